package view

import "html/template"

// TemplateName is the name the panel template is registered under
const TemplateName = "panel.html"

const panelHTML = `<!DOCTYPE html>
<html>
<head><title>Tender Management</title></head>
<body>
<h1>Tender Management</h1>
<p>Connected account: {{.Account}}</p>
{{with .Official}}
<h2>Official Panel</h2>
<h3>Create Tender</h3>
<form method="post" action="/tenders">
  <input name="description" placeholder="Description">
  <input name="min_bid" placeholder="Minimum bid (wei)">
  <button type="submit">Create Tender</button>
</form>
<h3>Tenders</h3>
<ul>
{{range .Tenders}}
  <li data-tender="{{.ID}}">
    <p>ID: {{.ID}}</p>
    <p>Description: {{.Description}}</p>
    <p>Min Bid: {{.MinBid}} wei</p>
    <p>Status: {{.Status}}</p>
    <p>Winner: {{.Winner}}</p>
    <a href="/tenders/{{.ID}}/bids?view=panel">View Bids</a>
  </li>
{{end}}
</ul>
{{if .Bids}}
<h3>Bids for Tender {{.SelectedTender}}</h3>
<a href="/tenders/{{.SelectedTender}}/bids?sort=amount&view=panel">Sort Bids by Amount</a>
<ul>
{{range .Bids}}
  <li>
    <p>Bidder: {{.Bidder}}</p>
    <p>Amount: {{.Amount}} wei</p>
    {{if .CanSelect}}
    <form method="post" action="/tenders/{{$.Official.SelectedTender}}/winner">
      <input type="hidden" name="bidder" value="{{.Bidder}}">
      <button type="submit">Select as Winner</button>
    </form>
    {{else if not $.Official.SelectedOpen}}
    <button type="button" disabled>Select as Winner (Closed)</button>
    {{end}}
  </li>
{{end}}
</ul>
{{end}}
{{end}}
{{with .Bidder}}
<h2>Bidder Panel</h2>
<h3>Available Tenders</h3>
<ul>
{{range .Tenders}}
  <li data-tender="{{.ID}}">
    <p>ID: {{.ID}}</p>
    <p>Description: {{.Description}}</p>
    <p>Min Bid: {{.MinBid}} wei</p>
    <p>Status: {{.Status}}</p>
    {{if .ShowBidInput}}
    <form method="post" action="/tenders/{{.ID}}/bids">
      <input name="amount" placeholder="Bid amount (wei)">
      <button type="submit">Submit Bid</button>
    </form>
    {{end}}
  </li>
{{end}}
</ul>
{{end}}
</body>
</html>
`

// Template returns the parsed panel template for gin's HTML renderer
func Template() *template.Template {
	return template.Must(template.New(TemplateName).Parse(panelHTML))
}
