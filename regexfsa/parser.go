package regexfsa

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dmort27/morphotactics/internal/symtab"
	"github.com/dmort27/morphotactics/wfst"
)

func tracer() tracing.Trace {
	return tracing.Select("morphotactics.regexfsa")
}

// CompilerConfig configures regex compilation behavior.
type CompilerConfig struct {
	// MaxPatternLength bounds the number of runes accepted in a single
	// min_word_constraint pattern. Subset construction is worst-case
	// exponential in the number of union/closure branches, so this is the
	// one knob worth exposing to keep a malformed or generated pattern
	// from blowing up compilation.
	MaxPatternLength int
}

// DefaultCompilerConfig returns a CompilerConfig with a sensible default pattern-length cap.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxPatternLength: 512}
}

type frameKind int

const (
	frameScope frameKind = iota
	frameUnion
	frameSigma
	frameSymbol
	frameProcessed
)

type frame struct {
	kind frameKind
	fsa  *wfst.Automaton
}

// Compile parses pattern against alphabet and returns an optimized
// acceptor. syms is the symbol-interning table the acceptor's labels are
// drawn from: literal regex characters and alphabet-class symbols are
// interned into it. A caller splicing the acceptor into an automaton built
// over another table must translate labels through syms.
func Compile(pattern string, alphabet Alphabet, syms *symtab.Table) (*wfst.Automaton, error) {
	return CompileWithConfig(pattern, alphabet, syms, DefaultCompilerConfig())
}

// CompileWithConfig is Compile with an explicit CompilerConfig.
func CompileWithConfig(pattern string, alphabet Alphabet, syms *symtab.Table, cfg CompilerConfig) (*wfst.Automaton, error) {
	if err := alphabet.validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: -1, Err: err}
	}
	runes := []rune(pattern)
	if cfg.MaxPatternLength > 0 && len(runes) > cfg.MaxPatternLength {
		return nil, &CompileError{Pattern: pattern, Pos: cfg.MaxPatternLength, Err: ErrPatternTooLong}
	}

	var parens []rune // tracks '(' / '[' open groups, for balance + no-nesting checks
	var frames []*frame
	symbols := alphabet.allSymbols()

	atomFor := func(ch rune) *wfst.Automaton {
		if class, ok := alphabet[ch]; ok {
			labels := make([]wfst.Label, len(class))
			for i, s := range class {
				labels[i] = wfst.Label(syms.Intern(s))
			}
			return acceptUnion(labels)
		}
		return acceptLabel(wfst.Label(syms.Intern(string(ch))))
	}

	for i, ch := range runes {
		switch {
		case ch == '[':
			if len(parens) > 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrNestedGroup}
			}
			parens = append(parens, '[')
			frames = append(frames, &frame{kind: frameUnion, fsa: acceptEpsilon()})

		case ch == '(':
			if len(parens) > 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrNestedGroup}
			}
			parens = append(parens, '(')
			frames = append(frames, &frame{kind: frameScope, fsa: acceptEpsilon()})

		case ch == ')':
			if len(parens) == 0 || parens[len(parens)-1] != '(' {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrUnmatchedParen}
			}
			parens = parens[:len(parens)-1]
			frames[len(frames)-1].kind = frameProcessed

		case ch == ']':
			if len(parens) == 0 || parens[len(parens)-1] != '[' {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrUnmatchedBracket}
			}
			parens = parens[:len(parens)-1]
			frames[len(frames)-1].kind = frameProcessed

		// Inside an open group, every non-bracket character — including
		// what would otherwise be sigma or a quantifier — is taken as a
		// literal-or-class atom and folded into the group's running
		// automaton. Sigma and quantifiers only apply to a frame once its
		// group has closed (kind == frameProcessed falls through below).
		case len(frames) > 0 && (frames[len(frames)-1].kind == frameScope || frames[len(frames)-1].kind == frameUnion):
			top := frames[len(frames)-1]
			atom := atomFor(ch)
			if top.kind == frameScope {
				top.fsa = concat(top.fsa, atom)
			} else if top.fsa.NumStates() == 1 {
				// first atom after '[' seeds the union instead of unioning with empty
				top.fsa = concat(top.fsa, atom)
			} else {
				top.fsa = union(top.fsa, atom)
			}

		case ch == '.':
			if len(alphabet) == 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrMissingAlphabet}
			}
			sigmaLabels := make([]wfst.Label, len(symbols))
			for j, s := range symbols {
				sigmaLabels[j] = wfst.Label(syms.Intern(s))
			}
			frames = append(frames, &frame{kind: frameSigma, fsa: acceptUnion(sigmaLabels)})

		case ch == '?':
			if i == 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrEmptyQuantifier}
			}
			top := frames[len(frames)-1]
			top.fsa = optional(top.fsa)

		case ch == '*':
			if i == 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrEmptyQuantifier}
			}
			top := frames[len(frames)-1]
			top.fsa = closureStar(top.fsa)
			// Redundant with closureStar already including epsilon, but the
			// source applies this union unconditionally in exactly these two
			// cases, so it is kept for fidelity.
			if (len(frames) == 1 && i == len(runes)-1) || top.kind == frameSigma {
				top.fsa = union(top.fsa, acceptEpsilon())
			}

		case ch == '+':
			if i == 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrEmptyQuantifier}
			}
			top := frames[len(frames)-1]
			top.fsa = closurePlus(top.fsa)

		default:
			frames = append(frames, &frame{kind: frameSymbol, fsa: atomFor(ch)})
		}
	}

	if len(parens) > 0 {
		if parens[len(parens)-1] == '(' {
			return nil, &CompileError{Pattern: pattern, Pos: len(runes), Err: ErrUnmatchedParen}
		}
		return nil, &CompileError{Pattern: pattern, Pos: len(runes), Err: ErrUnmatchedBracket}
	}

	var result *wfst.Automaton
	for _, f := range frames {
		if result == nil {
			result = f.fsa
		} else {
			result = concat(result, f.fsa)
		}
	}
	if result == nil {
		result = acceptEpsilon()
	}

	result.RemoveEpsilon()
	result = determinize(result)
	result.Optimize()
	tracer().Debugf("compiled pattern %q to %d-state acceptor", pattern, result.NumStates())
	return result, nil
}
