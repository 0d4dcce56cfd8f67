package compiler_test

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/internal/adapters/compiler"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMinifier_Compile(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompiler(ctrl)
	next.EXPECT().
		Compile(gomock.Any(), []byte("%p"), "index.haml", gomock.Any()).
		Return([]byte("<p>\n    hello   world\n</p>\n"), nil)

	out, err := compiler.NewMinifier(next).Compile(context.Background(), []byte("%p"), "index.haml", domain.DefaultCompileOptions())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>hello world")
	assert.NotContains(t, string(out), "\n")
}

func TestMinifier_Compile_KeepsTemplateActions(t *testing.T) {
	src := `<input type="checkbox" {{if .On}}checked{{end}}>` + "\n" +
		`<p class="{{ .Class }}">` + "\n    {{ range .Items }}<b>{{ . }}</b>{{ end }}\n</p>\n"

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompiler(ctrl)
	next.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(src), nil)

	out, err := compiler.NewMinifier(next).Compile(context.Background(), nil, "form.haml", domain.DefaultCompileOptions())
	require.NoError(t, err)
	assert.Contains(t, string(out), "{{if .On}}checked{{end}}")
	assert.Contains(t, string(out), "{{ .Class }}")
	assert.Contains(t, string(out), "{{ range .Items }}")

	tmpl, err := template.New("form").Parse(string(out))
	require.NoError(t, err)

	var buf bytes.Buffer
	data := map[string]any{"On": true, "Class": "note", "Items": []string{"a"}}
	require.NoError(t, tmpl.Execute(&buf, data))
	assert.Contains(t, buf.String(), "checked")
	assert.Contains(t, buf.String(), "note")
	assert.Contains(t, buf.String(), "<b>a</b>")
}

func TestMinifier_Compile_SkipsOutputWithMarker(t *testing.T) {
	src := []byte("<p>\n  fergusaction0x\n</p>")

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompiler(ctrl)
	next.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(src, nil)

	out, err := compiler.NewMinifier(next).Compile(context.Background(), nil, "x", domain.DefaultCompileOptions())
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestMinifier_Compile_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCompiler(ctrl)
	want := errors.New("syntax error")
	next.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, want)

	_, err := compiler.NewMinifier(next).Compile(context.Background(), nil, "x", domain.DefaultCompileOptions())
	assert.ErrorIs(t, err, want)
}

func TestProvider_CompilerFor(t *testing.T) {
	p := compiler.NewProvider()

	_, err := p.CompilerFor(domain.Theme{})
	require.ErrorIs(t, err, domain.ErrCompilerNotConfigured)

	plain, err := p.CompilerFor(domain.Theme{Compiler: domain.CompilerSpec{Cmd: []string{"cat"}}})
	require.NoError(t, err)
	assert.IsType(t, &compiler.ExecCompiler{}, plain)

	minified, err := p.CompilerFor(domain.Theme{Minify: true, Compiler: domain.CompilerSpec{Cmd: []string{"cat"}}})
	require.NoError(t, err)
	assert.IsType(t, &compiler.Minifier{}, minified)
}
