package guard

// Built-in pattern names and definitions. Callers outside this package may rely
// on exactly which strings these accept.
const (
	PatternNameKey      = "name"
	PatternEmailKey     = "email"
	PatternSubdomainKey = "subdomain"
	PatternDomainKey    = "domain"
	PatternHostnameKey  = "hostname"

	// PatternName accepts personal names: letters and marks, with single
	// spaces, apostrophes, dots or hyphens between parts.
	PatternName = `^[\p{L}\p{M}]+(?:[ '.\-]{1,2}[\p{L}\p{M}]+)*\.?$`

	// PatternEmail accepts addr-spec style addresses with a dotted domain and
	// an alphabetic top-level label.
	PatternEmail = `^[A-Za-z0-9!#$%&'*+/=?^_{|}~\-]+(?:\.[A-Za-z0-9!#$%&'*+/=?^_{|}~\-]+)*@` +
		`(?:[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`

	// PatternSubdomain accepts a single DNS label.
	PatternSubdomain = `^[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?$`

	// PatternDomain accepts two or more labels ending in an alphabetic TLD.
	PatternDomain = `^(?:[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`

	// PatternHostname accepts one or more DNS labels, so "localhost" passes.
	PatternHostname = `^[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]{0,61}[A-Za-z0-9])?)*$`
)

func defaultPatterns() map[string]string {
	return map[string]string{
		PatternNameKey:      PatternName,
		PatternEmailKey:     PatternEmail,
		PatternSubdomainKey: PatternSubdomain,
		PatternDomainKey:    PatternDomain,
		PatternHostnameKey:  PatternHostname,
	}
}
