package render

// Corporate layout: gradient header band, boxed totals, filled note panels.
const corporateHTML = `
{{define "css"}}
.corporate .band { padding: 32px; color: #ffffff; background: linear-gradient(135deg, {{.Style.Primary}} 0%, {{.Style.Secondary}} 100%); display: flex; justify-content: space-between; align-items: flex-start; }
.corporate .band h1 { font-size: 2.2em; margin-bottom: 8px; }
.corporate .band .docmeta { text-align: right; }
.corporate .band .docmeta h2 { font-size: 1.8em; }
.corporate .band .dim { opacity: 0.85; }
.corporate .content { padding: 32px; }
.corporate .billto { margin-bottom: 32px; padding: 24px; background: rgba(127,127,127,0.08); border-left: 4px solid {{.Style.Primary}}; border-radius: 8px; }
.corporate .items { width: 100%; border-collapse: collapse; margin-bottom: 32px; border: 1px solid rgba(127,127,127,0.25); border-radius: 8px; overflow: hidden; }
.corporate .items th { background: {{.Style.Primary}}; color: #ffffff; padding: 14px; text-transform: uppercase; font-size: 0.85em; }
.corporate .items td { padding: 14px; border-bottom: 1px solid rgba(127,127,127,0.15); }
.corporate .totals { width: 300px; margin-left: auto; margin-bottom: 32px; padding: 24px; background: rgba(127,127,127,0.08); border-radius: 8px; }
.corporate .totals .row { display: flex; justify-content: space-between; padding: 6px 0; }
.corporate .totals .grand { border-top: 2px solid {{.Style.Primary}}; margin-top: 8px; padding-top: 12px; font-size: 1.4em; font-weight: bold; color: {{.Style.Primary}}; }
.corporate .foot { border-top: 2px solid {{.Style.Primary}}; padding-top: 24px; display: flex; gap: 24px; }
.corporate .panel { flex: 1; padding: 20px; background: rgba(127,127,127,0.08); border-radius: 8px; }
.corporate .panel h4 { color: {{.Style.Primary}}; margin-bottom: 10px; }
.corporate .num { text-align: right; }
.corporate .mid { text-align: center; }
{{end}}

{{define "body"}}
<div class="corporate">
  <div class="band">
    <div>
      <h1>{{.Inv.Company.Name}}</h1>
      <div class="dim pre">{{.Inv.Company.Address}}</div>
      <div class="dim">{{.Inv.Company.Phone}} &middot; {{.Inv.Company.Email}}</div>
    </div>
    <div class="docmeta">
      <h2>{{.Inv.Heading}}</h2>
      <p>#{{.Inv.InvoiceNumber}}</p>
      <p class="dim">Date: {{.Inv.Date}}</p>
      {{if .Inv.DueDate}}<p class="dim">Due: {{.Inv.DueDate}}</p>{{end}}
    </div>
  </div>

  <div class="content">
    <div class="billto">
      <h3>Invoice To:</h3>
      <p><strong>{{.Inv.Client.Name}}</strong></p>
      <div class="muted pre">{{.Inv.Client.Address}}</div>
      <p class="muted">{{.Inv.Client.Phone}} &middot; {{.Inv.Client.Email}}</p>
    </div>

    <table class="items">
      <thead>
        <tr><th style="text-align:left">Description</th><th class="mid">Qty</th><th class="mid">Rate</th><th class="num">Amount</th></tr>
      </thead>
      <tbody>
        {{range .Inv.Items}}
        <tr>
          <td><strong>{{.Description}}</strong></td>
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
      {{if .Inv.Notes}}<div class="panel"><h4>Notes</h4><p class="muted">{{.Inv.Notes}}</p></div>{{end}}
      {{if .Inv.Terms}}<div class="panel"><h4>Terms &amp; Conditions</h4><p class="muted">{{.Inv.Terms}}</p></div>{{end}}
    </div>
  </div>
</div>
{{end}}
`
