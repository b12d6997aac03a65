package mail

import (
	"fmt"
	"html"
	"strings"
)

// firstWord returns the leading word of a name for the greeting line.
func firstWord(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "there"
	}
	return strings.Fields(name)[0]
}

// otpBody renders the verification-code mail body.
func otpBody(name string, code int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="font-family:'Inter',sans-serif;color:#1d1d1f;">
  <div style="max-width:520px;margin:auto;text-align:center;">
    <h1>Hello %s,</h1>
    <p>Thanks for signing up to <strong>Seek</strong> — your personalized day-to-day health partner.</p>
    <p>Use the OTP below to verify your email and continue:</p>
    <div style="font-size:32px;font-weight:700;letter-spacing:4px;background:#f5f5f5;padding:16px 28px;border-radius:10px;color:#ff4a00;display:inline-block;">%d</div>
    <p>If you didn&rsquo;t request this, you can safely ignore it.</p>
    <div style="margin-top:40px;font-size:14px;color:#888;">&mdash; The Seek Team</div>
  </div>
</body>
</html>`, html.EscapeString(firstWord(name)), code)
}

// resetBody renders the password-reset mail body.
func resetBody(name, link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="font-family:'Inter',sans-serif;color:#1d1d1f;">
  <div style="max-width:520px;margin:auto;text-align:center;">
    <h1>Hello %s,</h1>
    <p>We received a request to reset your <strong>Seek</strong> password.</p>
    <p><a href="%s" style="display:inline-block;background:#ff4a00;color:#fff;padding:14px 28px;border-radius:10px;text-decoration:none;">Reset password</a></p>
    <p>The link expires in one hour. If you didn&rsquo;t request this, you can safely ignore it.</p>
    <div style="margin-top:40px;font-size:14px;color:#888;">&mdash; The Seek Team</div>
  </div>
</body>
</html>`, html.EscapeString(firstWord(name)), html.EscapeString(link))
}
