package leads

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"loanhelp/internal/domain"
)

type email struct {
	Subject string
	HTML    string
}

type notificationData struct {
	Lead     *domain.Lead
	Priority domain.Priority
	Created  string
}

type autoReplyData struct {
	Lead    *domain.Lead
	SiteURL string
}

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))
	autoReplyTmpl    = template.Must(template.New("auto_reply").Parse(autoReplyHTML))
)

// buildNotificationEmail composes the operator notification describing the
// lead, with its priority classification in the subject and body.
func buildNotificationEmail(lead *domain.Lead) (*email, error) {
	priority := domain.ClassifyPriority(lead.Timeline, lead.CreditRange)

	subject := fmt.Sprintf("[%s] Lead: %s - %s - %s",
		priority, lead.Name, lead.State, lead.Timeline.Label())

	var buf bytes.Buffer
	err := notificationTmpl.Execute(&buf, notificationData{
		Lead:     lead,
		Priority: priority,
		Created:  lead.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	return &email{Subject: subject, HTML: buf.String()}, nil
}

// buildAutoReplyEmail composes the consumer acknowledgement with links to the
// site's educational resources.
func buildAutoReplyEmail(lead *domain.Lead, siteURL string) (*email, error) {
	var buf bytes.Buffer
	err := autoReplyTmpl.Execute(&buf, autoReplyData{Lead: lead, SiteURL: siteURL})
	if err != nil {
		return nil, err
	}

	return &email{
		Subject: "Thanks for Your Inquiry - Mobile Home Financing Help",
		HTML:    buf.String(),
	}, nil
}

const notificationHTML = `
<div style="font-family: Arial, sans-serif; background:#f9fafb; padding:24px;">
  <div style="max-width:600px; margin:0 auto; background:#ffffff; border:1px solid #e5e7eb; border-radius:16px; overflow:hidden;">
    <div style="padding:16px 20px; background:#1e40af; color:#fff;">
      <div style="font-size:14px; font-weight:700;">MobileHomeLoanHelp.com</div>
      <div style="margin-top:6px; font-size:13px; opacity:0.95;">New lead submission</div>
    </div>
    <div style="padding:18px 20px;">
      <div style="display:inline-block; padding:6px 10px; border-radius:999px; font-size:12px; font-weight:700; color:#fff; background:{{.Priority.Color}};">
        PRIORITY: {{.Priority}}
      </div>

      <h2 style="margin:14px 0 8px; font-size:18px;">{{.Lead.Name}}</h2>

      <table style="width:100%; border-collapse:collapse; font-size:14px;">
        <tr>
          <td style="padding:8px 0; color:#6b7280; width:160px;">Email</td>
          <td style="padding:8px 0;"><a href="mailto:{{.Lead.Email}}" style="color:#1e40af; font-weight:700; text-decoration:none;">{{.Lead.Email}}</a></td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Phone</td>
          <td style="padding:8px 0;"><a href="tel:{{.Lead.Phone}}" style="color:#1e40af; font-weight:700; text-decoration:none;">{{.Lead.Phone}}</a></td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Your State</td>
          <td style="padding:8px 0; font-weight:700;">{{.Lead.State}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Property State</td>
          <td style="padding:8px 0; font-weight:700;">{{.Lead.PropertyState}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Home Type</td>
          <td style="padding:8px 0;">{{.Lead.HomeType.Label}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Credit Range</td>
          <td style="padding:8px 0;">{{.Lead.CreditRange.Label}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Timeline</td>
          <td style="padding:8px 0;">{{.Lead.Timeline.Label}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Source Page</td>
          <td style="padding:8px 0;">{{.Lead.SourcePage}}</td>
        </tr>
        <tr>
          <td style="padding:8px 0; color:#6b7280;">Timestamp</td>
          <td style="padding:8px 0;">{{.Created}}</td>
        </tr>
      </table>

      {{if .Lead.AdditionalInfo}}
      <div style="margin-top:14px; padding:12px; border-radius:12px; border:1px solid #e5e7eb; background:#f9fafb;">
        <div style="font-size:12px; color:#6b7280; font-weight:700;">Additional Info</div>
        <div style="margin-top:6px; font-size:14px; color:#111827; line-height:1.5;">{{.Lead.AdditionalInfo}}</div>
      </div>
      {{end}}

      <div style="margin-top:16px; font-size:12px; color:#6b7280; line-height:1.5;">
        Disclaimer: MobileHomeLoanHelp.com is an educational resource and lead referral service. We are not a lender.
      </div>
    </div>
  </div>
</div>
`

const autoReplyHTML = `
<div style="font-family: Arial, sans-serif; background:#f9fafb; padding:24px;">
  <div style="max-width:600px; margin:0 auto; background:#ffffff; border:1px solid #e5e7eb; border-radius:16px; overflow:hidden;">
    <div style="padding:16px 20px; background:#1e40af; color:#fff;">
      <div style="font-size:14px; font-weight:700;">MobileHomeLoanHelp.com</div>
      <div style="margin-top:6px; font-size:13px; opacity:0.95;">Thanks for reaching out</div>
    </div>
    <div style="padding:18px 20px; color:#111827;">
      <p style="margin:0 0 12px; font-size:14px; line-height:1.6;">
        Hi {{.Lead.Name}}, thanks for your inquiry. A broker licensed in <strong>{{.Lead.State}}</strong> will contact you within 24 hours to discuss your options.
      </p>
      <p style="margin:0 0 12px; font-size:14px; line-height:1.6;">
        <strong>Next steps:</strong> they may ask a few questions about your budget, the home type (new vs used), and whether the land is owned or leased.
      </p>
      <p style="margin:0 0 14px; font-size:14px; line-height:1.6;">
        There is <strong>no obligation</strong> to accept any loan offer.
      </p>

      <div style="padding:12px; border-radius:12px; background:#f3f4f6; border:1px solid #e5e7eb;">
        <div style="font-size:12px; font-weight:700; color:#374151;">Helpful resources</div>
        <ul style="margin:8px 0 0; padding-left:18px; color:#111827; font-size:14px; line-height:1.6;">
          <li><a href="{{.SiteURL}}/calculator" style="color:#1e40af; font-weight:700; text-decoration:none;">Calculator</a></li>
          <li><a href="{{.SiteURL}}/requirements" style="color:#1e40af; font-weight:700; text-decoration:none;">Typical requirements</a></li>
          <li><a href="{{.SiteURL}}/leased-land" style="color:#1e40af; font-weight:700; text-decoration:none;">Leased land guide</a></li>
          <li><a href="{{.SiteURL}}/bad-credit" style="color:#1e40af; font-weight:700; text-decoration:none;">Bad credit options</a></li>
          <li><a href="{{.SiteURL}}/new-vs-used" style="color:#1e40af; font-weight:700; text-decoration:none;">New vs used</a></li>
        </ul>
      </div>

      <div style="margin-top:14px; font-size:12px; color:#6b7280; line-height:1.5;">
        MobileHomeLoanHelp.com is an educational resource and lead referral service operated by Momentum Growth Partners LLC. We are not a lender and do not make credit decisions.
      </div>
    </div>
  </div>
</div>
`
