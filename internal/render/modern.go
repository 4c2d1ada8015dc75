package render

// Modern layout: colored heading, zebra item rows, boxed client block.
const modernHTML = `
{{define "css"}}
.modern { padding: 32px; }
.modern .head { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 32px; }
.modern h1 { font-size: 2.4em; color: {{.Style.Primary}}; margin-bottom: 8px; }
.modern .company { text-align: right; }
.modern .company h2 { font-size: 1.5em; }
.modern .billto { margin-bottom: 32px; padding: 16px; background: rgba(127,127,127,0.08); border-radius: 8px; }
.modern .items { width: 100%; border-collapse: collapse; margin-bottom: 32px; }
.modern .items th { background: {{.Style.Primary}}; color: #ffffff; padding: 14px; }
.modern .items td { padding: 14px; border-bottom: 1px solid rgba(127,127,127,0.25); }
.modern .items tr:nth-child(even) td { background: rgba(127,127,127,0.06); }
.modern .totals { width: 260px; margin-left: auto; margin-bottom: 32px; }
.modern .totals .row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid rgba(127,127,127,0.25); }
.modern .totals .grand { font-weight: bold; font-size: 1.2em; color: {{.Style.Primary}}; }
.modern .foot { font-size: 0.85em; }
.modern .foot h4 { color: {{.Style.Primary}}; margin-bottom: 6px; }
.modern .num { text-align: right; }
.modern .mid { text-align: center; }
{{end}}

{{define "body"}}
<div class="modern">
  <div class="head">
    <div>
      <h1>{{.Inv.Heading}}</h1>
      <p class="muted">#{{.Inv.InvoiceNumber}}</p>
      <p class="muted">Date: {{.Inv.Date}}</p>
      {{if .Inv.DueDate}}<p class="muted">Due: {{.Inv.DueDate}}</p>{{end}}
    </div>
    <div class="company">
      <h2>{{.Inv.Company.Name}}</h2>
      <div class="muted pre">{{.Inv.Company.Address}}</div>
      <p class="muted">{{.Inv.Company.Phone}}</p>
      <p class="muted">{{.Inv.Company.Email}}</p>
    </div>
  </div>

  <div class="billto">
    <h3>Bill To:</h3>
    <p><strong>{{.Inv.Client.Name}}</strong></p>
    <div class="muted pre">{{.Inv.Client.Address}}</div>
    <p class="muted">{{.Inv.Client.Phone}}</p>
    <p class="muted">{{.Inv.Client.Email}}</p>
  </div>

  <table class="items">
    <thead>
      <tr><th>Description</th><th class="mid">Quantity</th><th class="mid">Rate</th><th class="num">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Inv.Items}}
      <tr>
        <td>{{.Description}}</td>
        <td class="mid">{{qty .Quantity}}</td>
        <td class="mid">{{money .Rate}}</td>
        <td class="num"><strong>{{money .Amount}}</strong></td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="totals">
    <div class="row"><span>Subtotal:</span><span>{{money .Inv.Subtotal}}</span></div>
    <div class="row"><span>Tax ({{qty .Inv.TaxRate}}%):</span><span>{{money .Inv.TaxAmount}}</span></div>
    <div class="row grand"><span>Total:</span><span>{{money .Inv.Total}}</span></div>
  </div>

  <div class="foot">
    {{if .Inv.Notes}}<h4>Notes</h4><p class="muted">{{.Inv.Notes}}</p>{{end}}
    {{if .Inv.Terms}}<h4>Terms</h4><p class="muted">{{.Inv.Terms}}</p>{{end}}
  </div>
</div>
{{end}}
`
