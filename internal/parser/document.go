package parser

import (
	"regexp"
	"sort"
	"strings"
)

var (
	defRe    = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(`)
	sigEndRe = regexp.MustCompile(`:\s*(#.*)?$`)
	tripleRe = regexp.MustCompile(`^[rRbBuUfF]{0,3}("""|''')`)
)

// ParseString decompõe o conteúdo de um arquivo em SourceDocument.
// Nunca retorna erro: entrada vazia ou malformada produz um documento
// degradado (sem preâmbulo e/ou sem funções) que as regras reportam depois.
func ParseString(path, content string) *SourceDocument {
	doc := &SourceDocument{Path: path, Lines: splitLines(content)}
	doc.Preamble = scanPreamble(doc.Lines)
	doc.Functions = scanFunctions(doc.Lines)
	return doc
}

// splitLines preserva a numeração original: um newline final não cria
// uma linha vazia sintética no fim.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// scanPreamble coleta os blocos de comentário/docstring no topo do
// arquivo, parando na primeira linha que não é comentário nem vazia.
// Uma docstring de topo nunca fechada é descartada (bloco ausente).
func scanPreamble(lines []string) []CommentBlock {
	var blocks []CommentBlock
	i := 0
	// Shebang não conta como bloco de documentação.
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		i = 1
	}
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			i++
		case strings.HasPrefix(trimmed, "#"):
			block := CommentBlock{StartLine: i + 1}
			for i < len(lines) {
				t := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(t, "#") {
					break
				}
				text := strings.TrimPrefix(t, "#")
				text = strings.TrimPrefix(text, " ")
				block.Lines = append(block.Lines, BlockLine{Number: i + 1, Text: text})
				block.EndLine = i + 1
				i++
			}
			blocks = append(blocks, block)
		case tripleRe.MatchString(trimmed):
			block, next, ok := scanTripleBlock(lines, i)
			if !ok {
				// Bloco não terminado: degrada para ausente e encerra o preâmbulo.
				return blocks
			}
			blocks = append(blocks, block)
			i = next
		default:
			return blocks
		}
	}
	return blocks
}

// scanTripleBlock lê uma docstring delimitada por aspas triplas a partir
// de lines[start]. Retorna ok=false se o delimitador nunca fecha.
func scanTripleBlock(lines []string, start int) (CommentBlock, int, bool) {
	trimmed := strings.TrimSpace(lines[start])
	quote := tripleRe.FindStringSubmatch(trimmed)[1]
	open := strings.Index(trimmed, quote) + len(quote)
	rest := trimmed[open:]

	block := CommentBlock{StartLine: start + 1}
	appendLine := func(n int, text string) {
		text = strings.TrimSpace(text)
		if text != "" {
			block.Lines = append(block.Lines, BlockLine{Number: n, Text: text})
		}
	}

	if idx := strings.Index(rest, quote); idx >= 0 {
		// Docstring de uma linha só.
		appendLine(start+1, rest[:idx])
		block.EndLine = start + 1
		return block, start + 1, true
	}
	appendLine(start+1, rest)

	for i := start + 1; i < len(lines); i++ {
		if idx := strings.Index(lines[i], quote); idx >= 0 {
			appendLine(i+1, lines[i][:idx])
			block.EndLine = i + 1
			return block, i + 1, true
		}
		appendLine(i+1, lines[i])
	}
	return CommentBlock{}, len(lines), false
}

// scanFunctions detecta definições de função nos dois níveis de
// indentação mais rasos em que aparece um "def". Spans nunca se
// sobrepõem: um def aninhado dentro do corpo de outro é ignorado.
func scanFunctions(lines []string) []Function {
	allowed := shallowestDefIndents(lines)
	if allowed == nil {
		return nil
	}

	var fns []Function
	lastEnd := 0
	for i, line := range lines {
		lineNo := i + 1
		if lineNo <= lastEnd {
			continue
		}
		m := defRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent := indentWidth(m[1])
		if !allowed[indent] {
			continue
		}

		fn := Function{Name: m[2], StartLine: lineNo, Indent: indent}
		sigEnd := findSignatureEnd(lines, i)
		fn.EndLine = findSpanEnd(lines, sigEnd, indent)
		fn.BodyStart = firstBodyLine(lines, sigEnd, fn.EndLine)
		fns = append(fns, fn)
		lastEnd = fn.EndLine
	}
	return fns
}

// shallowestDefIndents devolve o conjunto com as duas menores larguras
// de indentação dentre as linhas "def" do arquivo.
func shallowestDefIndents(lines []string) map[int]bool {
	seen := map[int]bool{}
	for _, line := range lines {
		if m := defRe.FindStringSubmatch(line); m != nil {
			seen[indentWidth(m[1])] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	widths := make([]int, 0, len(seen))
	for w := range seen {
		widths = append(widths, w)
	}
	sort.Ints(widths)
	if len(widths) > 2 {
		widths = widths[:2]
	}
	allowed := map[int]bool{}
	for _, w := range widths {
		allowed[w] = true
	}
	return allowed
}

// findSignatureEnd acha a linha que fecha a assinatura (termina em ":").
// Assinaturas quebradas em várias linhas são seguidas até o ":" final;
// se ele nunca aparece, degrada para a própria linha do def.
func findSignatureEnd(lines []string, defIdx int) int {
	for j := defIdx; j < len(lines); j++ {
		if sigEndRe.MatchString(strings.TrimRight(lines[j], " \t")) {
			return j
		}
		if j > defIdx && defRe.MatchString(lines[j]) {
			break
		}
	}
	return defIdx
}

// findSpanEnd devolve a última linha (1-based) do corpo: o span termina
// quando a indentação volta ao nível do def ou o arquivo acaba.
func findSpanEnd(lines []string, sigEnd, indent int) int {
	end := len(lines)
	for j := sigEnd + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "" {
			continue
		}
		if lineIndent(lines[j]) <= indent {
			end = j
			break
		}
	}
	// Recuar linhas em branco no fim do span.
	for end > sigEnd+1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return end
}

// firstBodyLine devolve a primeira linha não vazia do corpo (0 = vazio).
func firstBodyLine(lines []string, sigEnd, endLine int) int {
	for j := sigEnd + 1; j < endLine && j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) != "" {
			return j + 1
		}
	}
	return 0
}

func lineIndent(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return indentWidth(line[:i])
}

// indentWidth conta espaços como 1 e tab como 4.
func indentWidth(prefix string) int {
	w := 0
	for _, c := range prefix {
		if c == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}
