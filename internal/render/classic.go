package render

// Classic layout: centered serif heading, bordered table, left-rule
// party blocks.
const classicHTML = `
{{define "css"}}
.classic { padding: 32px; }
.classic .head { text-align: center; border-bottom: 2px solid {{.Style.Primary}}; padding-bottom: 24px; margin-bottom: 32px; }
.classic h1 { font-family: Georgia, "Times New Roman", serif; font-size: 3em; color: {{.Style.Primary}}; margin-bottom: 12px; }
.classic .parties { display: flex; gap: 32px; margin-bottom: 32px; }
.classic .party { flex: 1; }
.classic .party h3 { color: {{.Style.Primary}}; margin-bottom: 10px; }
.classic .party .block { border-left: 4px solid {{.Style.Primary}}; padding-left: 16px; }
.classic .party .client { border-left-color: {{.Style.Secondary}}; }
.classic .items { width: 100%; border-collapse: collapse; border: 2px solid {{.Style.Primary}}; margin-bottom: 32px; }
.classic .items th { background: {{.Style.Primary}}; color: #ffffff; padding: 14px; }
.classic .items td { padding: 14px; border-bottom: 1px solid rgba(127,127,127,0.25); }
.classic .totals { width: 300px; margin-left: auto; margin-bottom: 32px; border-collapse: collapse; }
.classic .totals td { padding: 8px 14px; text-align: right; }
.classic .totals .grand td { background: {{.Style.Primary}}; color: #ffffff; font-weight: bold; font-size: 1.1em; padding: 14px; }
.classic .foot { border-top: 2px solid {{.Style.Primary}}; padding-top: 24px; display: flex; gap: 24px; }
.classic .foot h4 { color: {{.Style.Primary}}; margin-bottom: 8px; }
.classic .num { text-align: right; }
.classic .mid { text-align: center; }
{{end}}

{{define "body"}}
<div class="classic">
  <div class="head">
    <h1>{{.Inv.Heading}}</h1>
    <p class="muted">Invoice #{{.Inv.InvoiceNumber}} &middot; {{.Inv.Date}}{{if .Inv.DueDate}} &middot; Due {{.Inv.DueDate}}{{end}}</p>
  </div>

  <div class="parties">
    <div class="party">
      <h3>From:</h3>
      <div class="block">
        <h4>{{.Inv.Company.Name}}</h4>
        <div class="muted pre">{{.Inv.Company.Address}}</div>
        <p class="muted">{{.Inv.Company.Phone}}</p>
        <p class="muted">{{.Inv.Company.Email}}</p>
      </div>
    </div>
    <div class="party">
      <h3>To:</h3>
      <div class="block client">
        <h4>{{.Inv.Client.Name}}</h4>
        <div class="muted pre">{{.Inv.Client.Address}}</div>
        <p class="muted">{{.Inv.Client.Phone}}</p>
        <p class="muted">{{.Inv.Client.Email}}</p>
      </div>
    </div>
  </div>

  <table class="items">
    <thead>
      <tr><th>Description</th><th class="mid">Qty</th><th class="mid">Rate</th><th class="num">Amount</th></tr>
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

  <table class="totals">
    <tr><td>Subtotal:</td><td>{{money .Inv.Subtotal}}</td></tr>
    <tr><td>Tax ({{qty .Inv.TaxRate}}%):</td><td>{{money .Inv.TaxAmount}}</td></tr>
    <tr class="grand"><td>TOTAL:</td><td>{{money .Inv.Total}}</td></tr>
  </table>

  <div class="foot">
    {{if .Inv.Notes}}<div><h4>Notes:</h4><p class="muted">{{.Inv.Notes}}</p></div>{{end}}
    {{if .Inv.Terms}}<div><h4>Terms &amp; Conditions:</h4><p class="muted">{{.Inv.Terms}}</p></div>{{end}}
  </div>
</div>
{{end}}
`
