package billing

// Printable documents are rendered server-side and returned as HTML; the
// browser's print dialog handles PDF conversion.

const farmerBillTemplate = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="UTF-8">
<title>किसान बिल - {{.Farmer.Name}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Mukta', sans-serif; font-size: 12px; line-height: 1.4; color: #333; padding: 20px; }
.bill-container { max-width: 800px; margin: 0 auto; border: 2px solid #047857; padding: 20px; }
.header { text-align: center; border-bottom: 2px solid #047857; padding-bottom: 15px; margin-bottom: 15px; }
.header h1 { color: #047857; font-size: 24px; margin-bottom: 5px; }
.info-section { display: flex; justify-content: space-between; margin-bottom: 20px; padding: 10px; background: #f0fdf4; border-radius: 5px; }
.info-block h3 { color: #047857; font-size: 14px; margin-bottom: 5px; }
.section-title { background: #047857; color: white; padding: 8px 15px; font-size: 14px; font-weight: 600; margin: 15px 0 10px 0; }
table { width: 100%; border-collapse: collapse; margin-bottom: 15px; }
th { background: #e0f2fe; color: #047857; padding: 8px; text-align: left; font-size: 11px; border: 1px solid #ddd; }
td { padding: 6px 8px; border: 1px solid #ddd; font-size: 11px; }
tr:nth-child(even) { background: #f9f9f9; }
.amount { text-align: right; font-weight: 600; }
.summary { background: #f0fdf4; padding: 15px; border-radius: 5px; margin-top: 20px; }
.summary-row { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px solid #ddd; }
.summary-row:last-child { border-bottom: none; font-weight: 700; font-size: 16px; color: #047857; }
.footer { text-align: center; margin-top: 20px; padding-top: 15px; border-top: 1px solid #ddd; color: #666; font-size: 11px; }
@media print { body { padding: 0; } .bill-container { border: none; } }
</style>
</head>
<body>
<div class="bill-container">
  <div class="header">
    <h1>🥛 {{.DairyName}}</h1>
    <p class="tagline">डेयरी प्रबंधन सॉफ्टवेयर | Dairy Management Software</p>
    {{if .DairyAddress}}<p>{{.DairyAddress}}</p>{{end}}
    {{if .DairyPhone}}<p>📞 {{.DairyPhone}}</p>{{end}}
  </div>
  <div class="info-section">
    <div class="info-block">
      <h3>किसान विवरण / Farmer Details</h3>
      <p><strong>नाम:</strong> {{.Farmer.Name}}</p>
      <p><strong>फ़ोन:</strong> {{.Farmer.Phone}}</p>
      <p><strong>गाँव:</strong> {{.Farmer.Village}}</p>
    </div>
    <div class="info-block">
      <h3>बिल अवधि / Bill Period</h3>
      <p><strong>From:</strong> {{.PeriodStart}}</p>
      <p><strong>To:</strong> {{.PeriodEnd}}</p>
      <p><strong>Date:</strong> {{.GeneratedDate}}</p>
    </div>
  </div>
  <div class="section-title">दूध संग्रह / Milk Collections</div>
  <table>
    <thead>
      <tr><th>तारीख</th><th>पाली</th><th>मात्रा</th><th>फैट</th><th>SNF</th><th>दर</th><th>राशि</th></tr>
    </thead>
    <tbody>
      {{range .Collections}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.Shift}}</td>
        <td>{{printf "%.1f" .Quantity}} L</td>
        <td>{{printf "%.1f" .Fat}}%</td>
        <td>{{printf "%.1f" .SNF}}%</td>
        <td>₹{{printf "%.2f" .Rate}}</td>
        <td class="amount">₹{{printf "%.2f" .Amount}}</td>
      </tr>
      {{else}}
      <tr><td colspan="7" style="text-align:center">कोई संग्रह नहीं</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="section-title">भुगतान / Payments</div>
  <table>
    <thead>
      <tr><th>तारीख</th><th>माध्यम</th><th>राशि</th><th>टिप्पणी</th></tr>
    </thead>
    <tbody>
      {{range .Payments}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.PaymentMode}}</td>
        <td class="amount">₹{{printf "%.2f" .Amount}}</td>
        <td>{{.Notes}}</td>
      </tr>
      {{else}}
      <tr><td colspan="4" style="text-align:center">कोई भुगतान नहीं</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="summary">
    <div class="summary-row"><span>कुल दूध / Total Milk:</span><span>{{printf "%.1f" .TotalMilk}} L</span></div>
    <div class="summary-row"><span>कुल राशि / Total Amount:</span><span>₹{{printf "%.2f" .TotalAmount}}</span></div>
    <div class="summary-row"><span>कुल भुगतान / Total Paid:</span><span>₹{{printf "%.2f" .TotalPaid}}</span></div>
    <div class="summary-row"><span>बकाया / Balance:</span><span>₹{{printf "%.2f" .Balance}}</span></div>
  </div>
  <div class="footer">
    <p>यह एक कंप्यूटर जनित बिल है | This is a computer generated bill</p>
    <p>Generated by {{.DairyName}} on {{.GeneratedAt}}</p>
  </div>
</div>
</body>
</html>`

const customerStatementTemplate = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="UTF-8">
<title>ग्राहक विवरण - {{.Customer.Name}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Mukta', sans-serif; font-size: 12px; line-height: 1.4; color: #333; padding: 20px; }
.bill-container { max-width: 800px; margin: 0 auto; border: 2px solid #047857; padding: 20px; }
.header { text-align: center; border-bottom: 2px solid #047857; padding-bottom: 15px; margin-bottom: 15px; }
.header h1 { color: #047857; font-size: 24px; margin-bottom: 5px; }
.info-section { display: flex; justify-content: space-between; margin-bottom: 20px; padding: 10px; background: #f0fdf4; border-radius: 5px; }
.info-block h3 { color: #047857; font-size: 14px; margin-bottom: 5px; }
.section-title { background: #047857; color: white; padding: 8px 15px; font-size: 14px; font-weight: 600; margin: 15px 0 10px 0; }
table { width: 100%; border-collapse: collapse; margin-bottom: 15px; }
th { background: #e0f2fe; color: #047857; padding: 8px; text-align: left; font-size: 11px; border: 1px solid #ddd; }
td { padding: 6px 8px; border: 1px solid #ddd; font-size: 11px; }
tr:nth-child(even) { background: #f9f9f9; }
.amount { text-align: right; font-weight: 600; }
.summary { background: #f0fdf4; padding: 15px; border-radius: 5px; margin-top: 20px; }
.summary-row { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px solid #ddd; }
.summary-row:last-child { border-bottom: none; font-weight: 700; font-size: 16px; color: #047857; }
.footer { text-align: center; margin-top: 20px; padding-top: 15px; border-top: 1px solid #ddd; color: #666; font-size: 11px; }
@media print { body { padding: 0; } .bill-container { border: none; } }
</style>
</head>
<body>
<div class="bill-container">
  <div class="header">
    <h1>🥛 {{.DairyName}}</h1>
    {{if .DairyAddress}}<p>{{.DairyAddress}}</p>{{end}}
    {{if .DairyPhone}}<p>📞 {{.DairyPhone}}</p>{{end}}
  </div>
  <div class="info-section">
    <div class="info-block">
      <h3>ग्राहक विवरण / Customer Details</h3>
      <p><strong>नाम:</strong> {{.Customer.Name}}</p>
      <p><strong>फ़ोन:</strong> {{.Customer.Phone}}</p>
    </div>
    <div class="info-block">
      <h3>विवरण अवधि / Statement Period</h3>
      <p><strong>From:</strong> {{.PeriodStart}}</p>
      <p><strong>To:</strong> {{.PeriodEnd}}</p>
      <p><strong>Date:</strong> {{.GeneratedDate}}</p>
    </div>
  </div>
  <div class="section-title">खरीद / Purchases</div>
  <table>
    <thead>
      <tr><th>तारीख</th><th>उत्पाद</th><th>मात्रा</th><th>दर</th><th>राशि</th></tr>
    </thead>
    <tbody>
      {{range .Sales}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.Product}}</td>
        <td>{{printf "%.1f" .Quantity}}</td>
        <td>₹{{printf "%.2f" .Rate}}</td>
        <td class="amount">₹{{printf "%.2f" .Amount}}</td>
      </tr>
      {{else}}
      <tr><td colspan="5" style="text-align:center">कोई खरीद नहीं</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="summary">
    <div class="summary-row"><span>अवधि खरीद / Period Purchases:</span><span>₹{{printf "%.2f" .PeriodPurchases}}</span></div>
    <div class="summary-row"><span>कुल भुगतान / Total Paid:</span><span>₹{{printf "%.2f" .Customer.TotalPaid}}</span></div>
    <div class="summary-row"><span>बकाया / Outstanding:</span><span>₹{{printf "%.2f" .Customer.Balance}}</span></div>
  </div>
  <div class="footer">
    <p>यह एक कंप्यूटर जनित विवरण है | This is a computer generated statement</p>
    <p>Generated by {{.DairyName}} on {{.GeneratedAt}}</p>
  </div>
</div>
</body>
</html>`

const dailyReportTemplate = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="UTF-8">
<title>दैनिक रिपोर्ट - {{.Date}}</title>
<style>
body { font-family: 'Mukta', sans-serif; font-size: 12px; padding: 20px; max-width: 900px; margin: 0 auto; }
.header { text-align: center; border-bottom: 2px solid #047857; padding-bottom: 15px; margin-bottom: 20px; }
.header h1 { color: #047857; margin-bottom: 5px; }
.stats-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 15px; margin-bottom: 20px; }
.stat-card { background: #f0fdf4; padding: 15px; border-radius: 8px; text-align: center; }
.stat-card h3 { font-size: 24px; color: #047857; }
.stat-card p { color: #666; font-size: 12px; }
table { width: 100%; border-collapse: collapse; margin-top: 15px; }
th { background: #047857; color: white; padding: 10px; text-align: left; }
td { padding: 8px 10px; border-bottom: 1px solid #ddd; }
.amount { text-align: right; font-weight: 600; }
</style>
</head>
<body>
<div class="header">
  <h1>🥛 {{.DairyName}}</h1>
  <h2>दैनिक रिपोर्ट / Daily Report</h2>
  <p>तारीख: {{.Date}}</p>
</div>
<div class="stats-grid">
  <div class="stat-card"><h3>{{printf "%.1f" .Summary.TotalQuantity}} L</h3><p>कुल दूध</p></div>
  <div class="stat-card"><h3>₹{{printf "%.0f" .Summary.TotalAmount}}</h3><p>कुल राशि</p></div>
  <div class="stat-card"><h3>{{printf "%.1f" .Summary.MorningQuantity}} L</h3><p>सुबह</p></div>
  <div class="stat-card"><h3>{{printf "%.1f" .Summary.EveningQuantity}} L</h3><p>शाम</p></div>
</div>
<h3>संग्रह विवरण / Collection Details</h3>
<table>
  <thead>
    <tr><th>किसान</th><th>पाली</th><th>मात्रा</th><th>फैट</th><th>SNF</th><th>दर</th><th>राशि</th></tr>
  </thead>
  <tbody>
    {{range .Collections}}
    <tr>
      <td>{{.FarmerName}}</td>
      <td>{{.Shift}}</td>
      <td>{{printf "%.1f" .Quantity}} L</td>
      <td>{{printf "%.1f" .Fat}}%</td>
      <td>{{printf "%.1f" .SNF}}%</td>
      <td>₹{{printf "%.2f" .Rate}}</td>
      <td class="amount">₹{{printf "%.2f" .Amount}}</td>
    </tr>
    {{else}}
    <tr><td colspan="7" style="text-align:center">कोई संग्रह नहीं</td></tr>
    {{end}}
  </tbody>
</table>
<div style="text-align:center; margin-top:30px; color:#666; font-size:11px;">
  Generated on {{.GeneratedAt}}
</div>
</body>
</html>`
