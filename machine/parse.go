package machine

import "strings"

type token struct {
	text   string
	char   rune
	isChar bool
}

// tokenize splits on single spaces. A quoted character is one token even when
// the quoted character is a space or a quote.
func tokenize(text string) []token {
	var tokens []token
	runes := []rune(text)
	for i := 0; i <= len(runes); {
		if i+2 < len(runes) &&
			runes[i] == '\'' &&
			runes[i+2] == '\'' &&
			(i+3 == len(runes) || runes[i+3] == ' ') {
			tokens = append(tokens, token{
				text:   string(runes[i : i+3]),
				char:   runes[i+1],
				isChar: true,
			})
			i += 4
			continue
		}
		end := i
		for end < len(runes) && runes[end] != ' ' {
			end++
		}
		tokens = append(tokens, token{
			text: string(runes[i:end]),
		})
		i = end + 1
	}
	return tokens
}

// Parse parses one trimmed program line. It never fails: text that is not a
// valid instruction becomes an Invalid carrying the reason.
func Parse(text string) Instruction {
	return parseTokens(text, tokenize(text))
}

func parseTokens(text string, tokens []token) Instruction {
	invalid := func(kind Kind, detail string) Instruction {
		return Invalid{
			Text:   text,
			Kind:   kind,
			Detail: detail,
		}
	}

	if len(tokens) == 0 || tokens[0].isChar {
		return invalid(InvalidInstruction, "")
	}
	operands := tokens[1:]

	switch tokens[0].text {

	case "Move":
		if len(operands) == 1 {
			switch operands[0].text {
			case "Left":
				return Move{Direction: Left}
			case "Right":
				return Move{Direction: Right}
			}
		}
		return invalid(Segfault, "bad move direction")

	case "Write":
		if len(operands) == 1 {
			if sym, ok := parseSymbol(operands[0]); ok {
				return Write{Symbol: sym}
			}
		}
		return invalid(Segfault, "bad write operand")

	case "Goto":
		if len(operands) == 1 && isIdentifier(operands[0]) {
			return Goto{Label: operands[0].text}
		}
		return invalid(Segfault, "bad goto target")

	case "Return":
		if len(operands) == 1 {
			switch operands[0].text {
			case "True":
				return Return{Verdict: true}
			case "False":
				return Return{Verdict: false}
			}
		}
		return invalid(Segfault, "bad return verdict")

	case "If":
		negate := false
		if len(operands) > 0 && !operands[0].isChar && operands[0].text == "Not" {
			negate = true
			operands = operands[1:]
		}
		if len(operands) < 2 {
			return invalid(Segfault, "bad condition")
		}
		sym, ok := parseSymbol(operands[0])
		if !ok {
			return invalid(Segfault, "bad condition symbol")
		}
		rest := operands[1:]
		then := parseTokens(joinTokens(rest), rest)
		if negate {
			return IfNot{Symbol: sym, Then: then}
		}
		return If{Symbol: sym, Then: then}

	}

	if len(tokens) == 1 {
		if name, ok := strings.CutSuffix(tokens[0].text, ":"); ok && isIdentifier(token{text: name}) {
			return Label{Name: name}
		}
	}

	return invalid(InvalidInstruction, "")
}

func parseSymbol(t token) (rune, bool) {
	if t.isChar {
		return t.char, true
	}
	if t.text == "Blank" {
		return Blank, true
	}
	return 0, false
}

func isIdentifier(t token) bool {
	if t.isChar || t.text == "" {
		return false
	}
	for _, r := range t.text {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func joinTokens(tokens []token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.text)
	}
	return strings.Join(parts, " ")
}
