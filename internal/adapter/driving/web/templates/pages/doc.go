// Package pages holds one templ component per page.
package pages
