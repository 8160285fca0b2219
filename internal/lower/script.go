package lower

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"molosser/internal/jsx"
	"molosser/internal/template"
)

const (
	// ScriptElement is the element whose content is hoisted instead of rendered.
	ScriptElement = "script"

	// DialectTypeScript is the primary script dialect and the default when the
	// type attribute is missing. Its literal content becomes module statements.
	DialectTypeScript = "text/typescript"
	// DialectTemplate marks a script whose children are template markup,
	// lowered and hoisted as-is.
	DialectTemplate = "text/molosser"
)

var dialects = []string{DialectTypeScript, DialectTemplate}

// transformScript hoists a script element's content into the context. The
// element renders nothing where it stands.
func (p *NodePass) transformScript(n *template.Tag) {
	if n.HasAttr("src") {
		p.Unsupported("External script tags are currently not supported").Fatal().Emit()
		return
	}

	typeAttr, hasType := n.Attr("type")
	scriptType := DialectTypeScript
	if hasType {
		scriptType = stripQuotes(typeAttr.Val)
	}
	if hasType && scriptType != DialectTypeScript && scriptType != DialectTemplate {
		b := p.Unsupported("Currently only scripts of type " + DialectTypeScript + " and " + DialectTemplate + " are supported").Fatal()
		if guess := closestDialect(scriptType); guess != "" {
			b.WithNote(template.PosInfo(n), "did you mean "+guess+"?")
		}
		b.Emit()
		return
	}

	if !p.IsTopLevel {
		p.Unsupported("node of type " + n.Type() + " is currently only supported at top level").Fatal().Emit()
		return
	}

	// Reported as fatal but the element is still hoisted below; the script
	// content pass only reads the text children.
	if scriptType == DialectTypeScript && n.Block != nil && hasNonText(n.Block) {
		p.Unsupported("script or style tags can have only text nodes").Fatal().Emit()
	}

	switch {
	case scriptType == DialectTypeScript:
		if stmts, ok := Run(p.Ctx.Passes.Script(n, p.Ctx)); ok {
			p.Ctx.Hoist(stmts...)
		}
	case scriptType == DialectTemplate && n.Block != nil:
		if nodes, ok := p.Ctx.Lower(n.Block); ok {
			p.Ctx.Hoist(nodes...)
		}
	}
	p.SetOutput([]jsx.Node{})
}

// stripQuotes removes one leading and one trailing quote character. The two
// ends are handled independently, so mismatched quotes are stripped too.
func stripQuotes(s string) string {
	if s != "" && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if s != "" && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}

func hasNonText(b *template.Block) bool {
	for _, c := range b.Nodes {
		if c.Kind() != template.KindText {
			return true
		}
	}
	return false
}

func closestDialect(got string) string {
	if got == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(got, dialects)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
