// Package classify assigns an error category to each raw block.
//
// Classification runs an ordered table of compiled regex rules against the
// block's header text. Order is load-bearing: more specific signatures
// (a named React warning, a Playwright locator line) must precede generic
// ones (a bare TypeError), and the first match wins. The default table is
// compiled once and is immutable afterward, so it is safe for concurrent
// readers.
package classify

import (
	"regexp"
	"strings"
	"sync"

	"github.com/adrozdenko/toonify/internal/block"
	"github.com/adrozdenko/toonify/pkg/record"
)

// Rule pairs an error type with its detection pattern.
type Rule struct {
	Type record.ErrorType
	re   *regexp.Regexp
}

// Table is an ordered rule set evaluated strictly first-match-wins.
type Table struct {
	rules []Rule
}

// Classify returns the type of the first rule matching text, or
// record.TypeRuntime when nothing matches. Pure function of text.
func (t *Table) Classify(text string) record.ErrorType {
	for _, r := range t.rules {
		if r.re.MatchString(text) {
			return r.Type
		}
	}
	return record.TypeRuntime
}

// Rules returns the table's rules in evaluation order.
func (t *Table) Rules() []Rule {
	return t.rules
}

var hws = regexp.MustCompile(`[ \t]+`)

// HeaderText builds the classification search string for a block: its
// non-frame lines, horizontal whitespace collapsed, joined by newlines so
// line-anchored patterns keep working.
func HeaderText(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || block.IsFrameLine(line) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(hws.ReplaceAllString(strings.TrimSpace(line), " "))
	}
	return sb.String()
}

var defaultTable = sync.OnceValue(buildDefault)

// DefaultTable returns the process-wide rule table, compiled on first use.
func DefaultTable() *Table {
	return defaultTable()
}

func rule(t record.ErrorType, pattern string) Rule {
	return Rule{Type: t, re: regexp.MustCompile(pattern)}
}

// buildDefault compiles the full rule set. Ordering notes are part of the
// contract: reordering rules changes classification results.
func buildDefault() *Table {
	return &Table{rules: []Rule{
		// DOM/React (most specific first)
		rule(record.TypeDOMNesting, `(?i)validateDOMNesting`),
		rule(record.TypeHydration, `(?i)hydrat(ion|e|ing).*(?:failed|mismatch|error)`),
		rule(record.TypeReactMinified, `Minified React error #\d+|react\.production\.min\.js`),
		rule(record.TypeInvalidHook, `(?i)Invalid hook call|Rules of Hooks|rendered more hooks`),
		rule(record.TypeReactKey, `(?i)Encountered two children with the same key|Keys should be unique|Non-unique keys may cause`),

		// Security. MixedContent before SecurityError: mixed-content text
		// contains "insecure", which the security rule also matches.
		rule(record.TypeCORS, `(?i)CORS|Access-Control-Allow-Origin|blocked by CORS|cross-origin`),
		rule(record.TypeCSP, `(?i)Content-Security-Policy|CSP|blocked.*policy|violat.*directive`),
		rule(record.TypeMixedContent, `(?i)Mixed Content|blocked.*insecure|http://.*https://`),
		rule(record.TypeSecurity, `(?i)SecurityError|security.*violation|insecure|blocked.*security`),

		// Browser APIs. ServiceWorker before HTTP: SW failures often quote
		// HTTP status codes.
		rule(record.TypeServiceWorker, `(?i)ServiceWorker|service.*worker.*(?:error|failed)|SW.*(?:error|failed)`),
		rule(record.TypeMedia, `(?i)MediaError|NotSupportedError.*media|play\(\).*failed|autoplay.*blocked`),
		rule(record.TypeIndexedDB, `(?i)IndexedDB|IDBDatabase|QuotaExceededError|VersionError`),

		// Network
		rule(record.TypeNetwork, `(?i)Failed to fetch|NetworkError|net::ERR_|NS_ERROR_|fetch.*failed`),
		rule(record.TypeWebSocket, `(?i)WebSocket.*(?:error|failed|closed)|ws://.*error|wss://.*error`),
		// "GET /api 404" or "status: 500" but not "bundle.js:45892"
		rule(record.TypeHTTP, `(?i)\b(GET|POST|PUT|DELETE|PATCH)\s+\S+\s+[45]\d{2}\b|status[:\s]+[45]\d{2}\b|\b[45]\d{2}\s+(Not Found|Internal Server|Bad Request|Unauthorized|Forbidden)`),

		// Build tools / testing. Playwright before Storybook: its patterns
		// are more specific.
		rule(record.TypePlaywright, `(?i)locator\.(click|fill|waitFor|check|press|type|hover)|page\.(goto|waitFor|click)|expect\(.*\)\.(toBeVisible|toHaveText|toBeEnabled|toBeChecked|toContainText)|TimeoutError.*locator|waiting for locator|strict mode violation|playwright|@playwright/test`),
		rule(record.TypeStorybook, `SB_`),
		rule(record.TypeNextJS, `(?i)NEXT_|getServerSideProps|getStaticProps|NextJS|next/`),
		rule(record.TypeModuleNotFound, `(?i)Module not found|Cannot find module|Cannot resolve|ModuleNotFoundError`),

		// Promises before plain JS errors: rejection text may quote a
		// TypeError.
		rule(record.TypeUnhandledRejection, `(?i)Unhandled.*rejection|UnhandledPromiseRejection|promise.*reject`),

		// JavaScript errors, with optional browser console file:line prefix.
		rule(record.TypeTypeError, `(?m)^(?:\S+:\d+\s+)?TypeError:|Uncaught TypeError`),
		rule(record.TypeRefError, `(?m)^(?:\S+:\d+\s+)?ReferenceError:|Uncaught ReferenceError`),
		rule(record.TypeSyntaxError, `(?m)^(?:\S+:\d+\s+)?SyntaxError:|Uncaught SyntaxError`),
		rule(record.TypeRangeError, `(?m)^(?:\S+:\d+\s+)?RangeError:|Uncaught RangeError`),
		rule(record.TypeURIError, `(?m)^(?:\S+:\d+\s+)?URIError:|Uncaught URIError`),
		rule(record.TypeEvalError, `(?m)^(?:\S+:\d+\s+)?EvalError:|Uncaught EvalError`),

		// System / Node errno codes
		rule(record.TypeSystem, `ENOENT|EACCES|ECONNREFUSED|ETIMEDOUT|EADDRINUSE|EPERM`),

		// Warnings
		rule(record.TypeDeprecation, `(?i)deprecated|deprecation|will be removed|no longer supported`),

		// Catch-all, must stay last
		rule(record.TypeRuntime, `at .* \(.*:\d+:\d+\)|Error:.*\n.*at\s`),
	}}
}
