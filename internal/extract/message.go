package extract

import (
	"regexp"
	"strings"

	"github.com/adrozdenko/toonify/internal/textutil"
	"github.com/adrozdenko/toonify/pkg/record"
)

// maxCodeLen bounds extracted tool-specific error codes.
const maxCodeLen = 100

var (
	domIssueRe      = regexp.MustCompile(`<[a-z]+> cannot (?:appear as a |be a )?descendant of <[a-z]+>`)
	systemCodeRe    = regexp.MustCompile(`E[A-Z]+:[^\n]*`)
	storybookCodeRe = regexp.MustCompile(`SB_[A-Z_]+[^\n]*`)
	nextjsCodeRe    = regexp.MustCompile(`NEXT_[A-Z_]+|(?:getServerSideProps|getStaticProps)[^\n]*error`)
	httpStatusRe    = regexp.MustCompile(`\b[45]\d{2}\b`)
)

// Message derives the human-readable message for a block, using per-type
// rules for categories whose salient line is not the header. Extraction
// never fails: the worst case is the block's first non-blank line.
func Message(text string, t record.ErrorType) string {
	if msg := messageFor(text, t); msg != "" {
		return msg
	}
	return firstLine(text)
}

// messageFor is the per-type dispatch. Exhaustive over the ErrorType enum;
// the default arm covers TypeRuntime and any future additions.
func messageFor(text string, t record.ErrorType) string {
	switch t {
	case record.TypeDOMNesting:
		if m := domIssueRe.FindString(text); m != "" {
			return m
		}
		return lineContaining(text, "descendant")
	case record.TypeHydration:
		return lineContaining(text, "hydration", "mismatch", "server", "client")
	case record.TypeReactMinified:
		return lineContaining(text, "Minified React error", "react.production")
	case record.TypeInvalidHook:
		return lineContaining(text, "Invalid hook", "Rules of Hooks", "rendered more hooks")
	case record.TypeReactKey:
		return lineStartingWith(text, "Encountered two children with the same key")

	case record.TypeTypeError:
		return lineStartingWith(text, "TypeError:", "Uncaught TypeError")
	case record.TypeRefError:
		return lineStartingWith(text, "ReferenceError:", "Uncaught ReferenceError")
	case record.TypeSyntaxError:
		return lineStartingWith(text, "SyntaxError:", "Uncaught SyntaxError")
	case record.TypeRangeError:
		return lineStartingWith(text, "RangeError:", "Uncaught RangeError")
	case record.TypeURIError:
		return lineStartingWith(text, "URIError:", "Uncaught URIError")
	case record.TypeEvalError:
		return lineStartingWith(text, "EvalError:", "Uncaught EvalError")

	case record.TypeCORS:
		return lineContaining(text, "CORS", "Access-Control", "cross-origin", "blocked")
	case record.TypeNetwork:
		return lineContaining(text, "Failed to fetch", "NetworkError", "net::ERR_", "fetch")
	case record.TypeHTTP:
		if status := httpStatusRe.FindString(text); status != "" {
			return lineContaining(text, status)
		}
		return ""
	case record.TypeWebSocket:
		return lineContaining(text, "WebSocket", "ws://", "wss://")

	case record.TypeCSP:
		return lineContaining(text, "Content-Security-Policy", "CSP", "directive", "violated")
	case record.TypeSecurity:
		return lineContaining(text, "SecurityError", "security", "blocked")
	case record.TypeMixedContent:
		return lineContaining(text, "Mixed Content", "insecure", "http://")

	case record.TypeStorybook:
		return firstMatchTruncated(text, storybookCodeRe)
	case record.TypeNextJS:
		if m := firstMatchTruncated(text, nextjsCodeRe); m != "" {
			return m
		}
		return lineContaining(text, "NEXT_", "getServerSideProps", "getStaticProps")
	case record.TypeModuleNotFound:
		return lineContaining(text, "Module not found", "Cannot find module", "Cannot resolve")
	case record.TypePlaywright:
		// The salient line is the locator/assertion, not the header.
		return lineContaining(text, "TimeoutError", "locator", "expect(", "waiting for", "strict mode", "Timeout")

	case record.TypeSystem:
		return systemCodeRe.FindString(text)

	case record.TypeUnhandledRejection:
		return lineContaining(text, "Unhandled", "rejection", "promise")

	case record.TypeMedia:
		return lineContaining(text, "MediaError", "play()", "autoplay", "media")
	case record.TypeIndexedDB:
		return lineContaining(text, "IndexedDB", "IDBDatabase", "QuotaExceeded")
	case record.TypeServiceWorker:
		return lineContaining(text, "ServiceWorker", "service worker", "SW")

	case record.TypeDeprecation:
		return lineContaining(text, "deprecated", "deprecation", "will be removed")

	default:
		return firstLine(text)
	}
}

// lineContaining returns the first line containing any needle,
// case-insensitively.
func lineContaining(text string, needles ...string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, n := range needles {
			if strings.Contains(lower, strings.ToLower(n)) {
				return strings.TrimSpace(line)
			}
		}
	}
	return ""
}

// lineStartingWith returns the first line starting with any prefix. Falls
// back to a mid-line hit for browser console format ("file.js:29
// TypeError: ..."), returning the text from the prefix onward.
func lineStartingWith(text string, prefixes ...string) string {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		for _, p := range prefixes {
			if strings.HasPrefix(line, p) {
				return line
			}
		}
	}
	for _, line := range lines {
		for _, p := range prefixes {
			if idx := strings.Index(line, p); idx >= 0 {
				return line[idx:]
			}
		}
	}
	return ""
}

func firstMatchTruncated(text string, re *regexp.Regexp) string {
	if m := re.FindString(text); m != "" {
		return textutil.Truncate(m, maxCodeLen)
	}
	return ""
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
