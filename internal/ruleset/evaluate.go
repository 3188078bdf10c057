package ruleset

// Qualifies reports whether at least one active rule matches text.
// It is a pre-filter over an element's aggregate text: leaves inside a
// qualifying element are still evaluated one by one.
func (s *Set) Qualifies(text string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.rules {
		if r.inert {
			continue
		}
		if s.matches(r, text) {
			return true
		}
	}
	return false
}

// EvaluateLeaf returns the transforms active rules produce for text, in rule
// order. Every rule sees the original text.
func (s *Set) EvaluateLeaf(text string) []Transform {
	if s == nil || text == "" {
		return nil
	}

	var out []Transform
	for _, r := range s.rules {
		if r.inert {
			continue
		}

		if !r.rule.Hide {
			if s.matches(r, text) {
				out = append(out, Transform{
					Rule:  r.index,
					Class: r.rule.Class,
					Text:  text,
					Match: text,
				})
			}
			continue
		}

		m, err := r.pattern.Find(text)
		if err != nil {
			s.logMatchError(r, err)
			continue
		}
		if m == nil || m.Group == "" {
			continue
		}
		out = append(out, Transform{
			Rule:  r.index,
			Class: r.rule.Class,
			Hide:  true,
			Text:  m.Group,
			Match: m.Text,
		})
	}
	return out
}

// matches runs a single match attempt. Errors (timeouts) count as no match.
func (s *Set) matches(r compiledRule, text string) bool {
	ok, err := r.pattern.MatchString(text)
	if err != nil {
		s.logMatchError(r, err)
		return false
	}
	return ok
}

// logMatchError logs at debug level: a slow pattern fails on every leaf
// and would flood the output otherwise.
func (s *Set) logMatchError(r compiledRule, err error) {
	s.logger.Debug().
		Int("rule", r.index).
		Str("regex", r.rule.Regex).
		Err(err).
		Msg("Match attempt failed, treating as no match")
}
