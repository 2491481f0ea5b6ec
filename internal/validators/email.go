package validators

import (
	"net"
	"strings"
)

// Normalize deixa o e-mail em formato canônico para índice único.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid resolve o domínio do e-mail (MX ou A/AAAA).
// Falha de DNS conta como domínio inválido.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
