package utils

import (
	"errors"
	"fmt"
	"strings"

	"billxe-app/config"
	"billxe-app/models"

	"gopkg.in/gomail.v2"
)

// SendUnassignedReport gửi báo cáo bill chưa xếp đủ qua email
func SendUnassignedReport(rows []models.PendingBill) error {
	if config.SMTPHost == "" || config.SMTPSender == "" {
		return errors.New("SMTP is not configured")
	}
	if len(config.SMTPRecipients) == 0 {
		return errors.New("SMTP_RECIPIENTS is empty")
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString("<h3>Bills pending or partially assigned</h3>")
	b.WriteString("<table border=\"1\" cellpadding=\"4\">")
	b.WriteString("<tr><th>BillID</th><th>Total</th><th>Assigned</th><th>Remaining</th></tr>")
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%g</td><td>%g</td><td>%g</td></tr>",
			r.BillID, r.Total, r.Assigned, r.Remaining)
	}
	b.WriteString("</table>")
	b.WriteString("<p>This is an auto-generated email. Please do not reply.</p>")
	b.WriteString("</body></html>")

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.SMTPRecipients...)
	msg.SetHeader("Subject", fmt.Sprintf("🚚 BillXe: %d bill(s) pending", len(rows)))
	msg.SetBody("text/html", b.String())

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
