package token

// Source identifies the buffer a set of tokens should be rebound against
// during repair. Rules that move an AST subtree between files record which
// Source each moved token came from so repair can rebind correctly instead of
// reading bytes from the wrong buffer.
type Source struct {
	Path string
	Text []byte
}

// Repairer walks tokens handed to it by a rule and rebinds each one's literal
// content against the Source it was parsed from, then (if requested) applies
// a line-number shift. It mirrors the canonical-byte rebinding pass the
// teacher's plan formatter runs before re-serializing a tree built from
// pieces sourced from more than one place.
type Repairer struct {
	warnings []RepairWarning
}

// RepairWarning records a token whose byte span no longer falls inside its
// claimed source; per spec §4.10/§7 this is a warning, not a fatal error, and
// the stale token is left in place.
type RepairWarning struct {
	Path  string
	Start int
	End   int
}

// NewRepairer creates an empty Repairer.
func NewRepairer() *Repairer {
	return &Repairer{}
}

// Rebind rebinds tok's content against src and shifts its line number by
// delta. It always succeeds from the caller's point of view; out-of-range
// spans are recorded as warnings rather than returned as errors.
func (r *Repairer) Rebind(tok *Token, src Source, delta int64) {
	if tok == nil {
		return
	}
	before, _ := tok.Content()
	tok.ReplaceReferencedBytes(src.Text)
	after, ok := tok.Content()
	if !ok || (after == "" && before == "" && tok.End > len(src.Text)) {
		r.warnings = append(r.warnings, RepairWarning{Path: src.Path, Start: tok.Start, End: tok.End})
	}
	if delta != 0 {
		tok.ShiftLine(delta)
	}
}

// Warnings returns every out-of-range rebind encountered so far.
func (r *Repairer) Warnings() []RepairWarning {
	return r.warnings
}

// RebindAll rebinds every token in tokens against src, applying no line
// shift. It is the common case: a module inlined verbatim into a new block
// keeps its own line numbers, it just needs its tokens decoupled from the
// original per-file buffer so the generator reads the right bytes.
func (r *Repairer) RebindAll(tokens []*Token, src Source) {
	for _, tok := range tokens {
		r.Rebind(tok, src, 0)
	}
}
