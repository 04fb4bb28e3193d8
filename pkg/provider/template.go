package provider

import "strings"

// Vars holds the values available to {{token}} expansion. Every input-shaped
// token (input, phone, email, url, ip, domain) resolves to Input, so a config
// written for one lookup type keeps working when reused for another.
type Vars struct {
	// Input is the value being looked up.
	Input string
	// APIKey is the provider credential from the config.
	APIKey string
}

func (v Vars) tokens() map[string]string {
	return map[string]string{
		"input":  v.Input,
		"phone":  v.Input,
		"email":  v.Input,
		"url":    v.Input,
		"ip":     v.Input,
		"domain": v.Input,
		"apiKey": v.APIKey,
		"key":    v.APIKey,
	}
}

// Expand replaces every declared {{token}} in s with its value. The string is
// scanned exactly once: replacement values are never re-expanded, so an input
// containing "{{key}}" cannot smuggle the API key into the output. Unknown
// tokens are left untouched.
func Expand(s string, vars Vars) string {
	tokens := vars.tokens()

	var b strings.Builder
	for {
		i := strings.Index(s, "{{")
		if i < 0 {
			b.WriteString(s)

			break
		}
		j := strings.Index(s[i+2:], "}}")
		if j < 0 {
			b.WriteString(s)

			break
		}

		b.WriteString(s[:i])
		name := strings.TrimSpace(s[i+2 : i+2+j])
		if val, ok := tokens[name]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(s[i : i+2+j+2])
		}
		s = s[i+2+j+2:]
	}

	return b.String()
}

// ExpandValues applies Expand to every string value of params and returns a
// new map. Non-string values pass through unchanged; nested structures are not
// descended into.
func ExpandValues(params map[string]any, vars Vars) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if s, ok := v.(string); ok {
			out[k] = Expand(s, vars)
		} else {
			out[k] = v
		}
	}

	return out
}

// ExpandHeaders applies Expand to every header value and returns a new map.
func ExpandHeaders(headers map[string]string, vars Vars) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = Expand(v, vars)
	}

	return out
}
