// Package analysis implements the email-centric adjunct checks: DNS domain
// profiling, email-account discovery and breach-indicator lookups.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

// Resolver answers one DNS question. Implementations must be safe for
// concurrent use.
type Resolver interface {
	Exchange(ctx context.Context, name string, qtype uint16) ([]dns.RR, error)
}

type dnsResolver struct {
	client *dns.Client
	server string
}

// NewResolver builds a resolver that queries the given host:port server
// over UDP.
func NewResolver(server string) Resolver {
	return &dnsResolver{client: new(dns.Client), server: server}
}

func (r *dnsResolver) Exchange(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true
	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("dns %s %s: %w", dns.TypeToString[qtype], name, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("dns %s %s: %s", dns.TypeToString[qtype], name, dns.RcodeToString[resp.Rcode])
	}
	return resp.Answer, nil
}

// disposableDomains are throwaway mail providers: accounts on them are
// transient and rarely tie back to a persistent identity.
var disposableDomains = map[string]bool{
	"10minutemail.com": true,
	"temp-mail.org":    true,
	"guerrillamail.com": true,
	"mailinator.com":   true,
	"yopmail.com":      true,
	"tempmail.net":     true,
}

// freeProviders are consumer mail services. Anything else that is not
// disposable is treated as a corporate domain.
var freeProviders = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
}

// AnalyzeDomain profiles the domain of an email address (or a bare domain).
// Record lookups are best effort: a failed query type leaves its list empty
// rather than failing the analysis.
func AnalyzeDomain(ctx context.Context, r Resolver, emailOrDomain string) model.DomainInfo {
	domain := emailOrDomain
	if at := strings.LastIndex(emailOrDomain, "@"); at >= 0 {
		domain = emailOrDomain[at+1:]
	}
	domain = strings.ToLower(strings.TrimSpace(domain))

	info := model.DomainInfo{
		Domain:       domain,
		MXRecords:    []string{},
		ARecords:     []string{},
		NSRecords:    []string{},
		TXTRecords:   []string{},
		IsDisposable: disposableDomains[domain],
	}
	info.IsCorporate = !info.IsDisposable && !freeProviders[domain]

	if rrs, err := r.Exchange(ctx, domain, dns.TypeMX); err == nil {
		for _, rr := range rrs {
			if mx, ok := rr.(*dns.MX); ok {
				info.MXRecords = append(info.MXRecords, fmt.Sprintf("%d %s", mx.Preference, mx.Mx))
			}
		}
	}
	if rrs, err := r.Exchange(ctx, domain, dns.TypeA); err == nil {
		for _, rr := range rrs {
			if a, ok := rr.(*dns.A); ok {
				info.ARecords = append(info.ARecords, a.A.String())
			}
		}
	}
	if rrs, err := r.Exchange(ctx, domain, dns.TypeNS); err == nil {
		for _, rr := range rrs {
			if ns, ok := rr.(*dns.NS); ok {
				info.NSRecords = append(info.NSRecords, ns.Ns)
			}
		}
	}
	if rrs, err := r.Exchange(ctx, domain, dns.TypeTXT); err == nil {
		for _, rr := range rrs {
			if txt, ok := rr.(*dns.TXT); ok {
				info.TXTRecords = append(info.TXTRecords, strings.Join(txt.Txt, ""))
			}
		}
	}
	return info
}
