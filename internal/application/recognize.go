package application

import (
	"fmt"
	"regexp"
	"strings"

	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
)

// translation-rendering markup elements recognized by the element grammar.
var transElements = map[string]bool{"Trans": true}

// recognizer walks one file's syntax tree and collects raw extraction
// candidates. It carries the ambient namespace established by
// useTranslation/withTranslation/getFixedT, which is why it is per-file state.
type recognizer struct {
	file      string
	namespace string
	occs      []entities.Occurrence
	report    *domain.Report
}

// Recognize pattern-matches the tree into extraction candidates, in document
// order. It is a pure function of the tree; warnings go into report.
func Recognize(file string, program *entities.SyntaxNode, report *domain.Report) []entities.Occurrence {
	r := &recognizer{file: file, report: report}
	r.walk(program)
	return r.occs
}

func (r *recognizer) walk(n *entities.SyntaxNode) {
	switch n.Kind {
	case entities.KindCall:
		r.visitCall(n)
	case entities.KindElement:
		r.visitElement(n)
	}
	for _, a := range n.Attrs {
		r.walk(a)
	}
	for _, c := range n.Children {
		r.walk(c)
	}
}

func (r *recognizer) visitCall(n *entities.SyntaxNode) {
	r.captureNamespace(n)
	if !isTranslationCallee(n.Name) {
		return
	}
	if len(n.Children) == 0 {
		return
	}

	first := n.Children[0]
	if first.Kind != entities.KindString {
		r.report.Add(domain.Warning{
			Kind:   domain.WarnDynamicKey,
			File:   r.file,
			Detail: fmt.Sprintf("line %d: key argument of %s() cannot be resolved statically", n.Line, n.Name),
		})
		return
	}

	occ := entities.Occurrence{
		File:         r.file,
		Line:         n.Line,
		Column:       n.Column,
		RawKey:       first.Value,
		RawNamespace: r.namespace,
	}

	// Only the first matching argument pattern is honored: either
	// t(key, defaultValue[, options]) or t(key, options).
	var options *entities.SyntaxNode
	if len(n.Children) > 1 {
		switch second := n.Children[1]; second.Kind {
		case entities.KindString:
			occ.DefaultValue = second.Value
			occ.HasDefault = true
			if len(n.Children) > 2 && n.Children[2].Kind == entities.KindObject {
				options = n.Children[2]
			}
		case entities.KindObject:
			options = n.Children[1]
		}
	}
	if options != nil {
		r.applyOptions(&occ, options)
	}

	r.occs = append(r.occs, occ)
}

// applyOptions reads the recognized fields of a t() options object.
func (r *recognizer) applyOptions(occ *entities.Occurrence, obj *entities.SyntaxNode) {
	if p := obj.Prop("defaultValue"); p != nil && !occ.HasDefault {
		if v := literalString(p.ValueNode()); v != nil {
			occ.DefaultValue = *v
			occ.HasDefault = true
		}
	}
	if p := obj.Prop("context"); p != nil {
		if v := literalString(p.ValueNode()); v != nil && *v != "" {
			occ.Context = *v
			occ.HasContext = true
		}
	}
	// an explicit ns option beats the ambient namespace, as at runtime
	if p := obj.Prop("ns"); p != nil {
		if v := literalString(p.ValueNode()); v != nil && *v != "" {
			occ.RawNamespace = *v
		}
	}
	// count marks plurality by presence alone, whatever its value.
	if obj.Prop("count") != nil {
		occ.HasCount = true
	}
}

func (r *recognizer) visitElement(n *entities.SyntaxNode) {
	if !transElements[n.Name] {
		return
	}
	keyAttr := n.Attr("i18nKey")
	if keyAttr == nil {
		return
	}
	key := literalString(keyAttr.ValueNode())
	if key == nil {
		r.report.Add(domain.Warning{
			Kind:   domain.WarnDynamicKey,
			File:   r.file,
			Detail: fmt.Sprintf("line %d: i18nKey of <%s> cannot be resolved statically", n.Line, n.Name),
		})
		return
	}

	occ := entities.Occurrence{
		File:         r.file,
		Line:         n.Line,
		Column:       n.Column,
		RawKey:       *key,
		RawNamespace: r.namespace,
	}
	if ns := n.Attr("ns"); ns != nil {
		if v := literalString(ns.ValueNode()); v != nil && *v != "" {
			occ.RawNamespace = *v
		}
	}
	if def := n.Attr("defaults"); def != nil {
		if v := literalString(def.ValueNode()); v != nil {
			occ.DefaultValue = *v
			occ.HasDefault = true
		}
	}
	if !occ.HasDefault {
		if text := elementText(n.Children); text != "" {
			occ.DefaultValue = text
			occ.HasDefault = true
		}
	}
	if ctx := n.Attr("context"); ctx != nil {
		if v := literalString(ctx.ValueNode()); v != nil && *v != "" {
			occ.Context = *v
			occ.HasContext = true
		}
	}
	if n.Attr("count") != nil {
		occ.HasCount = true
	}

	r.occs = append(r.occs, occ)
}

// captureNamespace updates the ambient namespace from the hook/HOC calls that
// bind one for the rest of the file.
func (r *recognizer) captureNamespace(n *entities.SyntaxNode) {
	var arg *entities.SyntaxNode
	switch n.Name {
	case "useTranslation", "withTranslation":
		if len(n.Children) > 0 {
			arg = n.Children[0]
		}
	case "getFixedT":
		if len(n.Children) > 1 {
			arg = n.Children[1]
		}
	default:
		return
	}
	if arg == nil {
		return
	}
	if v := literalString(arg); v != nil && *v != "" {
		r.namespace = *v
	}
}

// isTranslationCallee accepts t and member calls ending in .t (i18n.t etc).
func isTranslationCallee(name string) bool {
	return name == "t" || strings.HasSuffix(name, ".t")
}

// literalString extracts the text of a literal node, or nil when the node is
// absent or not statically resolvable.
func literalString(n *entities.SyntaxNode) *string {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case entities.KindString, entities.KindNumber, entities.KindBool:
		v := n.Value
		return &v
	default:
		return nil
	}
}

var multiSpace = regexp.MustCompile(`\s+`)

// elementText renders element content the way the runtime does: literal text
// joined in order, nested elements replaced by indexed placeholder tags, and
// whitespace runs collapsed.
func elementText(children []*entities.SyntaxNode) string {
	var b strings.Builder
	for i, c := range children {
		switch c.Kind {
		case entities.KindText, entities.KindString:
			b.WriteString(multiSpace.ReplaceAllString(c.Value, " "))
		case entities.KindElement:
			inner := elementText(c.Children)
			if inner == "" && len(c.Children) == 0 {
				fmt.Fprintf(&b, "<%d />", i)
			} else {
				fmt.Fprintf(&b, "<%d>%s</%d>", i, inner, i)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
