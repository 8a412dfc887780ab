package pkg

import "strings"

// Input masks for the public acceptance form. These mirror the masking the
// portal applies client-side: invalid runes are dropped, partial input is
// formatted as far as it goes and nothing here ever returns an error.

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskPhone formats a Brazilian phone number: (11) 98765-4321 for 11 digits,
// (11) 8765-4321 for 10. Longer input is truncated, shorter input is
// formatted partially.
func MaskPhone(s string) string {
	d := onlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// MaskDocument formats CPF (11 digits: 123.456.789-01) or CNPJ
// (14 digits: 12.345.678/0001-01) based on length.
func MaskDocument(s string) string {
	d := onlyDigits(s)
	if len(d) > 14 {
		d = d[:14]
	}
	if len(d) <= 11 {
		return maskCPF(d)
	}
	return maskCNPJ(d)
}

func maskCPF(d string) string {
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

func maskCNPJ(d string) string {
	switch {
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	default:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
}
