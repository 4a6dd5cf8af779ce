package parser

// Function é uma definição de função detectada no arquivo.
type Function struct {
	Name      string
	StartLine int // linha do "def", 1-based
	EndLine   int // última linha pertencente ao corpo (inclusive)
	BodyStart int // primeira linha após a assinatura (0 = corpo vazio)
	Indent    int // largura da indentação da linha "def"
}

// BlockLine é uma linha de um bloco de comentários já sem os marcadores.
type BlockLine struct {
	Number int // 1-based, estável em relação ao arquivo original
	Text   string
}

// CommentBlock é um bloco contíguo de comentários (#) ou uma docstring
// de módulo (aspas triplas) no topo do arquivo.
type CommentBlock struct {
	StartLine int
	EndLine   int
	Lines     []BlockLine
}

// SourceDocument é a decomposição imutável de um arquivo fonte.
// Construído por ParseString e descartado após a geração do Report.
type SourceDocument struct {
	Path      string
	Lines     []string // índice i = linha i+1
	Preamble  []CommentBlock
	Functions []Function
}

// PreambleAfter devolve, achatado, o texto do preâmbulo a partir da
// posição skip do primeiro bloco (os blocos seguintes entram inteiros).
// Usado pela regra BLUF para olhar o que vem depois do cabeçalho.
func (d *SourceDocument) PreambleAfter(skip int) []BlockLine {
	var out []BlockLine
	for i, b := range d.Preamble {
		lines := b.Lines
		if i == 0 {
			if skip >= len(lines) {
				continue
			}
			lines = lines[skip:]
		}
		out = append(out, lines...)
	}
	return out
}
