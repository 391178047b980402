package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i18nextract/internal/domain"
	"i18nextract/internal/domain/entities"
)

func program(children ...*entities.SyntaxNode) *entities.SyntaxNode {
	return &entities.SyntaxNode{Kind: entities.KindProgram, Children: children}
}

func call(name string, args ...*entities.SyntaxNode) *entities.SyntaxNode {
	return &entities.SyntaxNode{Kind: entities.KindCall, Name: name, Children: args}
}

func str(v string) *entities.SyntaxNode {
	return &entities.SyntaxNode{Kind: entities.KindString, Value: v}
}

func obj(props ...*entities.SyntaxNode) *entities.SyntaxNode {
	return &entities.SyntaxNode{Kind: entities.KindObject, Children: props}
}

func prop(name string, value *entities.SyntaxNode) *entities.SyntaxNode {
	p := &entities.SyntaxNode{Kind: entities.KindProperty, Name: name}
	if value != nil {
		p.Children = []*entities.SyntaxNode{value}
	}
	return p
}

func TestRecognizeCallWithDefault(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(call("t", str("greeting"), str("Hello"))), report)

	require.Len(t, occs, 1)
	assert.Equal(t, "greeting", occs[0].RawKey)
	assert.Equal(t, "Hello", occs[0].DefaultValue)
	assert.True(t, occs[0].HasDefault)
	assert.Zero(t, report.Len())
}

func TestRecognizeMemberCallees(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(
		call("i18n.t", str("a")),
		call("props.t", str("b")),
		call("toast", str("not a key")),
		call("fmt", str("not a key")),
	), report)

	require.Len(t, occs, 2)
	assert.Equal(t, "a", occs[0].RawKey)
	assert.Equal(t, "b", occs[1].RawKey)
}

func TestRecognizeOptionsObject(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(call("t", str("friend"),
		obj(
			prop("defaultValue", str("A friend")),
			prop("context", str("male")),
			prop("ns", str("people")),
			prop("count", nil),
		),
	)), report)

	require.Len(t, occs, 1)
	occ := occs[0]
	assert.Equal(t, "A friend", occ.DefaultValue)
	assert.True(t, occ.HasDefault)
	assert.Equal(t, "male", occ.Context)
	assert.True(t, occ.HasContext)
	assert.Equal(t, "people", occ.RawNamespace)
	assert.True(t, occ.HasCount)
}

func TestRecognizeDefaultStringBeatsOptionsDefault(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(call("t", str("k"), str("positional"),
		obj(prop("defaultValue", str("from options"))),
	)), report)

	require.Len(t, occs, 1)
	assert.Equal(t, "positional", occs[0].DefaultValue)
}

func TestRecognizeCountByPresence(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(call("t", str("item"),
		obj(prop("count", &entities.SyntaxNode{Kind: entities.KindIdent, Name: "n"})),
	)), report)

	require.Len(t, occs, 1)
	assert.True(t, occs[0].HasCount, "count marks plurality whatever its value")
}

func TestRecognizeDynamicKeyWarns(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(
		call("t", &entities.SyntaxNode{Kind: entities.KindIdent, Name: "keyVar"}),
	), report)

	assert.Empty(t, occs)
	require.Equal(t, 1, report.Len())
	assert.Equal(t, domain.WarnDynamicKey, report.Warnings()[0].Kind)
}

func TestRecognizeAmbientNamespace(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(
		call("t", str("before")),
		call("useTranslation", str("settings")),
		call("t", str("after")),
		call("getFixedT", str("en"), str("admin")),
		call("t", str("fixed")),
	), report)

	require.Len(t, occs, 3)
	assert.Equal(t, "", occs[0].RawNamespace)
	assert.Equal(t, "settings", occs[1].RawNamespace)
	assert.Equal(t, "admin", occs[2].RawNamespace)
}

func TestRecognizeNsOptionOverridesAmbientNamespace(t *testing.T) {
	report := &domain.Report{}
	occs := Recognize("app.ts", program(
		call("useTranslation", str("settings")),
		call("t", str("k"), obj(prop("ns", str("explicit")))),
	), report)

	require.Len(t, occs, 1)
	assert.Equal(t, "explicit", occs[0].RawNamespace)
}

func TestRecognizeTransElement(t *testing.T) {
	elem := &entities.SyntaxNode{
		Kind: entities.KindElement, Name: "Trans",
		Attrs: []*entities.SyntaxNode{
			prop("i18nKey", str("welcome")),
			prop("ns", str("home")),
		},
		Children: []*entities.SyntaxNode{
			{Kind: entities.KindText, Value: "Hello "},
			{Kind: entities.KindElement, Name: "strong", Children: []*entities.SyntaxNode{
				{Kind: entities.KindText, Value: "world"},
			}},
			{Kind: entities.KindText, Value: "!"},
		},
	}
	report := &domain.Report{}
	occs := Recognize("app.tsx", program(elem), report)

	require.Len(t, occs, 1)
	occ := occs[0]
	assert.Equal(t, "welcome", occ.RawKey)
	assert.Equal(t, "home", occ.RawNamespace)
	assert.Equal(t, "Hello <1>world</1>!", occ.DefaultValue)
	assert.True(t, occ.HasDefault)
}

func TestRecognizeTransDefaultsAttrWins(t *testing.T) {
	elem := &entities.SyntaxNode{
		Kind: entities.KindElement, Name: "Trans",
		Attrs: []*entities.SyntaxNode{
			prop("i18nKey", str("welcome")),
			prop("defaults", str("explicit default")),
		},
		Children: []*entities.SyntaxNode{{Kind: entities.KindText, Value: "ignored"}},
	}
	report := &domain.Report{}
	occs := Recognize("app.tsx", program(elem), report)

	require.Len(t, occs, 1)
	assert.Equal(t, "explicit default", occs[0].DefaultValue)
}

func TestRecognizeTransWithoutKeyIsSkipped(t *testing.T) {
	elem := &entities.SyntaxNode{Kind: entities.KindElement, Name: "Trans"}
	report := &domain.Report{}
	occs := Recognize("app.tsx", program(elem), report)

	assert.Empty(t, occs)
	assert.Zero(t, report.Len(), "a Trans without i18nKey is runtime-only, not a warning")
}

func TestRecognizeTransDynamicKeyWarns(t *testing.T) {
	elem := &entities.SyntaxNode{
		Kind: entities.KindElement, Name: "Trans",
		Attrs: []*entities.SyntaxNode{
			prop("i18nKey", &entities.SyntaxNode{Kind: entities.KindIdent, Name: "k"}),
		},
	}
	report := &domain.Report{}
	occs := Recognize("app.tsx", program(elem), report)

	assert.Empty(t, occs)
	require.Equal(t, 1, report.Len())
	assert.Equal(t, domain.WarnDynamicKey, report.Warnings()[0].Kind)
}
