// Package templates holds the templ components shared by every page.
package templates

// StatusClass maps a status kind to its CSS class list.
func StatusClass(kind string) string {
	if kind == "" {
		return "status"
	}
	return "status status-" + kind
}
