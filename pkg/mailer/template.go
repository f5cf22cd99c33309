package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"creditor/pkg/domain"
)

// creditEmailTemplate is the HTML body for credit notifications. Styling is
// inlined because most email clients strip <style> blocks.
const creditEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:Helvetica,Arial,sans-serif;">
  <div style="max-width:560px;margin:0 auto;padding:32px 24px;">
    <p style="font-size:20px;font-weight:bold;color:#18181b;margin:0 0 24px;">Cafe Cursor</p>
    <p style="font-size:28px;font-weight:bold;color:#18181b;margin:0 0 8px;">Your credits are ready</p>
    <p style="font-size:16px;color:#52525b;margin:0 0 32px;">Thanks for joining us, {{.FirstName}}</p>
    <div style="background-color:#ffffff;border-radius:12px;padding:32px;text-align:center;margin-bottom:32px;">
      <p style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#71717a;margin:0 0 8px;">Credit Amount</p>
      <p style="font-size:48px;font-weight:bold;color:#18181b;margin:0 0 8px;">${{.Amount}}</p>
      <p style="font-size:14px;color:#71717a;margin:0;">Ready to redeem on Cursor</p>
    </div>
    <div style="text-align:center;margin-bottom:32px;">
      <a href="{{.CreditURL}}" style="display:inline-block;background-color:#18181b;color:#ffffff;font-size:16px;font-weight:bold;text-decoration:none;padding:14px 32px;border-radius:8px;">Redeem Your Credits</a>
    </div>
    <hr style="border:none;border-top:1px solid #e4e4e7;margin:0 0 24px;">
    <p style="font-size:13px;color:#71717a;margin:0 0 8px;">If the button doesn't work, copy and paste this URL:</p>
    <p style="font-size:13px;color:#3f3f46;word-break:break-all;margin:0 0 24px;">{{.CreditURL}}</p>
    <p style="font-size:12px;color:#a1a1aa;margin:0;">Referral code: {{.Code}}</p>
  </div>
</body>
</html>`

var creditEmail = template.Must(template.New("credit-email").Parse(creditEmailTemplate))

// CreditSubject returns the subject line for a credit notification.
func CreditSubject(amount int) string {
	return fmt.Sprintf("Your Cursor Credits - $%d", amount)
}

// RenderCreditEmail produces the HTML body for notifying a person about
// their assigned credit.
func RenderCreditEmail(person domain.Person, credit domain.Credit) (string, error) {
	var buf strings.Builder

	err := creditEmail.Execute(&buf, struct {
		FirstName string
		CreditURL string
		Code      string
		Amount    int
	}{
		FirstName: person.FirstName,
		CreditURL: credit.URL,
		Code:      credit.Code,
		Amount:    credit.Amount,
	})
	if err != nil {
		return "", fmt.Errorf("could not render credit email: %w", err)
	}

	return buf.String(), nil
}
