package render

// Minimal layout: light typography, hairline rules, no fills.
const minimalHTML = `
{{define "css"}}
.minimal { padding: 48px; }
.minimal h1 { font-size: 1.9em; font-weight: 300; margin-bottom: 32px; }
.minimal .label { font-size: 0.7em; text-transform: uppercase; letter-spacing: 0.08em; color: {{.Style.Muted}}; margin-bottom: 4px; }
.minimal .meta { display: flex; justify-content: space-between; margin-bottom: 48px; }
.minimal .parties { display: flex; gap: 64px; margin-bottom: 48px; }
.minimal .items { width: 100%; border-collapse: collapse; margin-bottom: 48px; }
.minimal .items th { font-size: 0.7em; text-transform: uppercase; letter-spacing: 0.08em; color: {{.Style.Muted}}; font-weight: normal; padding-bottom: 8px; border-bottom: 1px solid rgba(127,127,127,0.35); }
.minimal .items td { padding: 12px 0; border-bottom: 1px solid rgba(127,127,127,0.15); }
.minimal .totals { width: 260px; margin-left: auto; }
.minimal .totals .row { display: flex; justify-content: space-between; padding: 4px 0; font-size: 0.9em; }
.minimal .totals .grand { border-top: 1px solid rgba(127,127,127,0.35); margin-top: 8px; padding-top: 8px; font-weight: 500; font-size: 1.1em; color: {{.Style.Primary}}; }
.minimal .foot { margin-top: 48px; font-size: 0.85em; }
.minimal .num { text-align: right; }
.minimal .mid { text-align: center; }
{{end}}

{{define "body"}}
<div class="minimal">
  <h1>{{.Inv.Heading}}</h1>

  <div class="meta">
    <div><div class="label">Invoice Number</div><div>{{.Inv.InvoiceNumber}}</div></div>
    <div><div class="label">Date</div><div>{{.Inv.Date}}</div></div>
    {{if .Inv.DueDate}}<div><div class="label">Due Date</div><div>{{.Inv.DueDate}}</div></div>{{end}}
  </div>

  <div class="parties">
    <div>
      <div class="label">From</div>
      <div>{{.Inv.Company.Name}}</div>
      <div class="muted pre">{{.Inv.Company.Address}}</div>
      <div class="muted">{{.Inv.Company.Email}}</div>
    </div>
    <div>
      <div class="label">To</div>
      <div>{{.Inv.Client.Name}}</div>
      <div class="muted pre">{{.Inv.Client.Address}}</div>
      <div class="muted">{{.Inv.Client.Email}}</div>
    </div>
  </div>

  <table class="items">
    <thead>
      <tr><th style="text-align:left">Description</th><th class="mid">Quantity</th><th class="mid">Rate</th><th class="num">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Inv.Items}}
      <tr>
        <td>{{.Description}}</td>
        <td class="mid muted">{{qty .Quantity}}</td>
        <td class="mid muted">{{money .Rate}}</td>
        <td class="num">{{money .Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div class="row"><span class="muted">Subtotal</span><span>{{money .Inv.Subtotal}}</span></div>
    <div class="row"><span class="muted">Tax ({{qty .Inv.TaxRate}}%)</span><span>{{money .Inv.TaxAmount}}</span></div>
    <div class="row grand"><span>Total</span><span>{{money .Inv.Total}}</span></div>
  </div>

  <div class="foot">
    {{if .Inv.Notes}}<p class="muted">{{.Inv.Notes}}</p>{{end}}
    {{if .Inv.Terms}}<p class="muted">{{.Inv.Terms}}</p>{{end}}
  </div>
</div>
{{end}}
`
