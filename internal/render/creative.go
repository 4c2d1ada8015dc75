package render

// Creative layout: monogram badge, rotated invoice pill, dotted accent,
// rounded item cards.
const creativeHTML = `
{{define "css"}}
.creative { position: relative; padding: 32px; overflow: hidden; }
.creative .dots { position: absolute; top: 0; right: 0; width: 256px; height: 256px; opacity: 0.06; transform: rotate(12deg); background: radial-gradient(circle, {{.Style.Primary}} 2px, transparent 2px); background-size: 20px 20px; }
.creative .inner { position: relative; z-index: 1; }
.creative .brand { display: flex; align-items: center; margin-bottom: 24px; }
.creative .badge { width: 48px; height: 48px; border-radius: 50%; margin-right: 16px; background: {{.Style.Primary}}; color: #ffffff; font-weight: bold; font-size: 1.3em; display: flex; align-items: center; justify-content: center; }
.creative .brand h1 { font-size: 1.9em; color: {{.Style.Primary}}; }
.creative .pill { display: inline-block; padding: 12px 24px; border-radius: 999px; background: {{.Style.Primary}}; color: #ffffff; font-weight: bold; font-size: 1.2em; transform: rotate(-2deg); margin-bottom: 32px; }
.creative .parties { display: flex; gap: 24px; margin-bottom: 32px; }
.creative .card { flex: 1; padding: 20px; border: 2px dashed {{.Style.Secondary}}; border-radius: 16px; }
.creative .card h3 { color: {{.Style.Primary}}; margin-bottom: 8px; }
.creative .item { display: flex; justify-content: space-between; align-items: center; padding: 16px 20px; margin-bottom: 12px; border-radius: 12px; background: rgba(127,127,127,0.08); }
.creative .item .desc { flex: 2; }
.creative .item .figures { flex: 1; text-align: right; }
.creative .totals { width: 280px; margin-left: auto; padding: 20px; border-radius: 16px; border: 2px solid {{.Style.Primary}}; margin-bottom: 32px; }
.creative .totals .row { display: flex; justify-content: space-between; padding: 5px 0; }
.creative .totals .grand { font-weight: bold; font-size: 1.3em; color: {{.Style.Primary}}; }
.creative .foot { font-size: 0.85em; }
.creative .foot h4 { color: {{.Style.Primary}}; margin-bottom: 6px; }
{{end}}

{{define "body"}}
<div class="creative">
  <div class="dots"></div>
  <div class="inner">
    <div class="brand">
      <div class="badge">{{printf "%.1s" .Inv.Company.Name}}</div>
      <div>
        <h1>{{.Inv.Company.Name}}</h1>
        <p class="muted">{{.Inv.Company.Email}}</p>
      </div>
    </div>

    <div class="pill">{{.Inv.Heading}} #{{.Inv.InvoiceNumber}}</div>
    <p class="muted">Date: {{.Inv.Date}}{{if .Inv.DueDate}} &middot; Due: {{.Inv.DueDate}}{{end}}</p>

    <div class="parties">
      <div class="card">
        <h3>From</h3>
        <p><strong>{{.Inv.Company.Name}}</strong></p>
        <div class="muted pre">{{.Inv.Company.Address}}</div>
        <p class="muted">{{.Inv.Company.Phone}}</p>
      </div>
      <div class="card">
        <h3>For</h3>
        <p><strong>{{.Inv.Client.Name}}</strong></p>
        <div class="muted pre">{{.Inv.Client.Address}}</div>
        <p class="muted">{{.Inv.Client.Phone}}</p>
      </div>
    </div>

    {{range .Inv.Items}}
    <div class="item">
      <div class="desc">
        <strong>{{.Description}}</strong>
        <div class="muted">{{qty .Quantity}} &times; {{money .Rate}}</div>
      </div>
      <div class="figures"><strong>{{money .Amount}}</strong></div>
    </div>
    {{end}}

    <div class="totals">
      <div class="row"><span class="muted">Subtotal</span><span>{{money .Inv.Subtotal}}</span></div>
      <div class="row"><span class="muted">Tax ({{qty .Inv.TaxRate}}%)</span><span>{{money .Inv.TaxAmount}}</span></div>
      <div class="row grand"><span>Total</span><span>{{money .Inv.Total}}</span></div>
    </div>

    <div class="foot">
      {{if .Inv.Notes}}<h4>Notes</h4><p class="muted">{{.Inv.Notes}}</p>{{end}}
      {{if .Inv.Terms}}<h4>Terms</h4><p class="muted">{{.Inv.Terms}}</p>{{end}}
    </div>
  </div>
</div>
{{end}}
`
