package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrozdenko/toonify/pkg/record"
)

func TestLocation_When_UserCodePresent(t *testing.T) {
	t.Parallel()

	lines := []string{
		"    at CardContent (webpack-internal:///./node_modules/@mui/material/CardContent.js:82:35)",
		"    at Dashboard (webpack-internal:///./src/pages/Dashboard.tsx:45:23)",
		"    at App (webpack-internal:///./node_modules/react-router/index.js:100:5)",
	}
	loc := Location(lines)
	require.NotNil(t, loc)
	assert.Equal(t, "Dashboard.tsx", loc.Path)
	assert.Equal(t, 45, loc.Line)
	assert.Equal(t, 23, loc.Column)
}

func TestLocation_When_OnlyDependencyCode(t *testing.T) {
	t.Parallel()

	lines := []string{
		"    at CardContent (webpack-internal:///./node_modules/@mui/material/CardContent.js:82:35)",
		"    at Container (webpack-internal:///./node_modules/@mui/material/Container.js:55:12)",
	}
	loc := Location(lines)
	require.NotNil(t, loc)
	assert.Equal(t, "CardContent.js", loc.Path)
	assert.Equal(t, 82, loc.Line)
}

func TestLocation_When_VariousExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		path  string
		lineN int
	}{
		{name: "tsx", line: "Error at MyComponent.tsx:42", path: "MyComponent.tsx", lineN: 42},
		{name: "mdx", line: "Error in iOS-SafeArea-Guide.mdx:79", path: "iOS-SafeArea-Guide.mdx", lineN: 79},
		{name: "vue", line: "Error at MyComponent.vue:123", path: "MyComponent.vue", lineN: 123},
		{name: "svelte", line: "Error at App.svelte:42", path: "App.svelte", lineN: 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			loc := Location([]string{tc.line})
			require.NotNil(t, loc)
			assert.Equal(t, tc.path, loc.Path)
			assert.Equal(t, tc.lineN, loc.Line)
		})
	}
}

func TestLocation_When_NoReference(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Location([]string{"Some error without file reference"}))
}

func TestParseFrame_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		fn   string
		path string
		ln   int
	}{
		{
			name: "at name loc",
			line: "    at Dashboard (webpack-internal:///./src/pages/Dashboard.tsx:45:23)",
			fn:   "Dashboard",
			path: "Dashboard.tsx",
			ln:   45,
		},
		{
			name: "at bare loc",
			line: "    at src/App.tsx:18:42",
			fn:   "",
			path: "App.tsx",
			ln:   18,
		},
		{
			name: "name at loc",
			line: "handleClick @ src/Button.tsx:12",
			fn:   "handleClick",
			path: "Button.tsx",
			ln:   12,
		},
		{
			name: "indented bare location",
			line: "    App.tsx:18:42",
			fn:   "",
			path: "App.tsx",
			ln:   18,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := ParseFrame(tc.line)
			assert.Equal(t, tc.fn, f.Func)
			require.NotNil(t, f.Loc)
			assert.Equal(t, tc.path, f.Loc.Path)
			assert.Equal(t, tc.ln, f.Loc.Line)
			assert.Equal(t, strings.TrimSpace(tc.line), f.Raw)
		})
	}
}

func TestParseFrame_NoPosition(t *testing.T) {
	t.Parallel()

	f := ParseFrame("    at Array.map (<anonymous>)")
	assert.Equal(t, "Array.map", f.Func)
	assert.Nil(t, f.Loc)
}

func TestFilterNoise_DropsFrameworkFrames(t *testing.T) {
	t.Parallel()

	frames := Frames([]string{
		"    at CardContent (webpack-internal:///./node_modules/@mui/material/CardContent.js:82:35)",
		"    at Dashboard (./src/pages/Dashboard.tsx:45:23)",
		"    at App (./src/App.tsx:18:42)",
		"    at Router (webpack-internal:///./node_modules/react-router/index.js:100:5)",
	})
	kept := FilterNoise(frames, nil, 0)
	require.Len(t, kept, 2)
	assert.Contains(t, kept[0].Raw, "Dashboard.tsx")
	assert.Contains(t, kept[1].Raw, "App.tsx")
}

func TestFilterNoise_CapsFrameCount(t *testing.T) {
	t.Parallel()

	frames := Frames([]string{
		"    at Component1 (./src/Component1.tsx:10:5)",
		"    at Component2 (./src/Component2.tsx:20:5)",
		"    at Component3 (./src/Component3.tsx:30:5)",
		"    at Component4 (./src/Component4.tsx:40:5)",
		"    at Component5 (./src/Component5.tsx:50:5)",
	})
	assert.Len(t, FilterNoise(frames, nil, 0), DefaultMaxFrames)
	assert.Len(t, FilterNoise(frames, nil, 5), 5)
}

func TestFilterNoise_KeepsFrameForExtractedLocation(t *testing.T) {
	t.Parallel()

	lines := []string{
		"    at CardContent (node_modules/@mui/material/CardContent.js:82:35)",
		"    at Container (node_modules/@mui/material/Container.js:55:12)",
	}
	loc := Location(lines)
	require.NotNil(t, loc)

	kept := FilterNoise(Frames(lines), loc, 0)
	require.Len(t, kept, 1)
	require.NotNil(t, kept[0].Loc)
	assert.Equal(t, loc.Path, kept[0].Loc.Path)
	assert.Equal(t, loc.Line, kept[0].Loc.Line)
}

func TestFilterNoise_EmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FilterNoise(nil, nil, 0))
}

func TestMessage_PerType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		typ   record.ErrorType
		want  string
	}{
		{
			name:  "dom nesting appear as",
			input: "Warning: validateDOMNesting(...): <p> cannot appear as a descendant of <p>.",
			typ:   record.TypeDOMNesting,
			want:  "<p> cannot appear as a descendant of <p>",
		},
		{
			name:  "dom nesting be a",
			input: "In HTML, <div> cannot be a descendant of <p>.",
			typ:   record.TypeDOMNesting,
			want:  "<div> cannot be a descendant of <p>",
		},
		{
			name:  "hydration keeps header",
			input: "Uncaught Error: Hydration failed because the initial UI does not match.",
			typ:   record.TypeHydration,
			want:  "Uncaught Error: Hydration failed because the initial UI does not match.",
		},
		{
			name:  "type error strips stack",
			input: "TypeError: Cannot read properties of undefined (reading 'map')\n    at Array.map",
			typ:   record.TypeTypeError,
			want:  "TypeError: Cannot read properties of undefined (reading 'map')",
		},
		{
			name:  "console prefix stripped to error",
			input: "bundle.js:42 TypeError: Cannot read properties of undefined (reading 'map')",
			typ:   record.TypeTypeError,
			want:  "TypeError: Cannot read properties of undefined (reading 'map')",
		},
		{
			name:  "system code",
			input: "Error: ENOENT: no such file or directory, open '/path/to/file'",
			typ:   record.TypeSystem,
			want:  "ENOENT: no such file or directory, open '/path/to/file'",
		},
		{
			name:  "playwright salient line",
			input: "Error: page assertion failed\nTimeoutError: waiting for locator('#submit') to be visible",
			typ:   record.TypePlaywright,
			want:  "TimeoutError: waiting for locator('#submit') to be visible",
		},
		{
			name:  "fallback first line",
			input: "something inexplicable happened\nmore detail",
			typ:   record.TypeRuntime,
			want:  "something inexplicable happened",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Message(tc.input, tc.typ))
		})
	}
}

func TestMessage_StorybookCodeTruncated(t *testing.T) {
	t.Parallel()

	input := "SB_PREVIEW_API_UNDEFINED: " + strings.Repeat("x", 200)
	got := Message(input, record.TypeStorybook)
	assert.True(t, strings.HasPrefix(got, "SB_PREVIEW_API_UNDEFINED"))
	assert.LessOrEqual(t, len(got), 100)
}

func TestMessage_NeverEmpty(t *testing.T) {
	t.Parallel()

	// Type-specific extraction finds nothing; worst case is the first line.
	got := Message("completely unrelated text", record.TypeCORS)
	assert.Equal(t, "completely unrelated text", got)
}

func TestUserCode(t *testing.T) {
	t.Parallel()

	assert.True(t, UserCode("src/pages/Dashboard.tsx"))
	assert.True(t, UserCode("    at Dashboard (webpack-internal:///./src/pages/Dashboard.tsx:45:23)"))
	assert.False(t, UserCode("node_modules/@mui/material/x.js"))
	assert.False(t, UserCode("chunk-ZJ2MJDOW.js"))
	assert.False(t, UserCode("    at div (node_modules/react-dom/cjs/react-dom.development.js:50:2)"))
}

func TestNewPatterns_Defaults(t *testing.T) {
	t.Parallel()

	p, err := NewPatterns(nil, nil)
	require.NoError(t, err)

	loc := p.Location([]string{"    at run (src/App.tsx:10:5)"})
	require.NotNil(t, loc)
	assert.Equal(t, "App.tsx", loc.Path)
}

func TestNewPatterns_ExtraNoisePattern(t *testing.T) {
	t.Parallel()

	p, err := NewPatterns([]string{`my-internal-`}, nil)
	require.NoError(t, err)

	frames := Frames([]string{
		"    at wrap (lib/my-internal-runtime.js:7:1)",
		"    at Dashboard (src/pages/Dashboard.tsx:45:23)",
	})
	kept := p.FilterNoise(frames, nil, 0)
	require.Len(t, kept, 1)
	assert.Contains(t, kept[0].Raw, "Dashboard.tsx")

	// The built-in recognizers are untouched by the extension.
	assert.Len(t, FilterNoise(frames, nil, 0), 2)
}

func TestNewPatterns_ExtraSourceExtension(t *testing.T) {
	t.Parallel()

	lines := []string{"Error at src/pages/index.astro:12:3"}
	assert.Nil(t, Location(lines), "astro is not a built-in extension")

	p, err := NewPatterns(nil, []string{"astro"})
	require.NoError(t, err)
	loc := p.Location(lines)
	require.NotNil(t, loc)
	assert.Equal(t, "index.astro", loc.Path)
	assert.Equal(t, 12, loc.Line)
}

func TestNewPatterns_InvalidNoisePattern(t *testing.T) {
	t.Parallel()

	_, err := NewPatterns([]string{`my-internal-(`}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "my-internal-(")
}
