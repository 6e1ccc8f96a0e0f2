package gen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"js":     jsString,
	"jsNext": jsNext,
}

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// jsNext renders a successor, null when terminal.
func jsNext(next string) string {
	if next == "" {
		return "null"
	}

	return jsString(next)
}

var jsTemplate = template.Must(template.New("js").Funcs(funcs).Parse(`// Animation mapping for {{.Asset}}
static walkAnimations = [
{{range .Walk}}    { name: {{js .Name}}, index: {{.Index}}, next: {{jsNext .Next}} },
{{end}}];

static animations = [
{{range .General}}    { name: {{js .Name}}, description: {{js .Description}}, icon: {{js .Icon}}, index: {{.Index}}, next: {{jsNext .Next}} },
{{end}}];
`))

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by anim-mapper from {{.Asset}}. DO NOT EDIT.

package {{.PackageName}}

// Animation is one clip of the {{.Asset}} model and the clip that follows it.
type Animation struct {
	Name        string
	Description string
	Icon        string
	Index       int
	// Next is empty when the clip holds its last frame.
	Next string
}

// WalkAnimations are the locomotion clips.
var WalkAnimations = []Animation{
{{range .Walk}}	{Name: {{printf "%q" .Name}}, Index: {{.Index}}, Next: {{printf "%q" .Next}}},
{{end}}}

// Animations are the general actions exposed in the UI.
var Animations = []Animation{
{{range .General}}	{Name: {{printf "%q" .Name}}, Description: {{printf "%q" .Description}}, Icon: {{printf "%q" .Icon}}, Index: {{.Index}}, Next: {{printf "%q" .Next}}},
{{end}}}
`))
