package parser

import (
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"newline_final_nao_cria_linha", "a\nb\n", 2},
		{"sem_newline_final", "a\nb", 2},
		{"vazio", "", 0},
		{"so_newline", "\n", 1},
		{"crlf", "a\r\nb\r\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseString("x.py", tt.content)
			if len(doc.Lines) != tt.want {
				t.Errorf("esperado %d linhas, obtido %d", tt.want, len(doc.Lines))
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := ParseString("x.py", "")
	if len(doc.Lines) != 0 || len(doc.Functions) != 0 || len(doc.Preamble) != 0 {
		t.Errorf("entrada vazia deveria produzir documento vazio, obtido %+v", doc)
	}
}

func TestScanPreambleHashBlocks(t *testing.T) {
	content := "# ====\n# Proj v1.0\n# ====\n\n# BLUF aqui\n\nx = 1\n"
	doc := ParseString("x.py", content)

	if len(doc.Preamble) != 2 {
		t.Fatalf("esperado 2 blocos, obtido %d", len(doc.Preamble))
	}
	first := doc.Preamble[0]
	if first.StartLine != 1 || first.EndLine != 3 || len(first.Lines) != 3 {
		t.Errorf("bloco 1 inesperado: %+v", first)
	}
	if first.Lines[1].Text != "Proj v1.0" || first.Lines[1].Number != 2 {
		t.Errorf("linha de título inesperada: %+v", first.Lines[1])
	}
	if doc.Preamble[1].StartLine != 5 {
		t.Errorf("bloco 2 deveria começar na linha 5, obtido %d", doc.Preamble[1].StartLine)
	}
}

func TestScanPreambleTripleQuote(t *testing.T) {
	content := "'''\n====\nProj v1\n====\n'''\ncode = 1\n"
	doc := ParseString("x.py", content)

	if len(doc.Preamble) != 1 {
		t.Fatalf("esperado 1 bloco, obtido %d", len(doc.Preamble))
	}
	b := doc.Preamble[0]
	if b.StartLine != 1 || b.EndLine != 5 {
		t.Errorf("span do bloco inesperado: %d-%d", b.StartLine, b.EndLine)
	}
	if len(b.Lines) != 3 || b.Lines[0].Text != "====" || b.Lines[1].Text != "Proj v1" {
		t.Errorf("conteúdo do bloco inesperado: %+v", b.Lines)
	}
}

func TestScanPreambleUnterminatedTriple(t *testing.T) {
	doc := ParseString("x.py", "'''\nabc\n")
	if len(doc.Preamble) != 0 {
		t.Errorf("docstring não terminada deveria degradar para ausente, obtido %d blocos", len(doc.Preamble))
	}
}

func TestScanPreambleShebang(t *testing.T) {
	doc := ParseString("x.py", "#!/usr/bin/env python\n# hello\n")
	if len(doc.Preamble) != 1 {
		t.Fatalf("esperado 1 bloco, obtido %d", len(doc.Preamble))
	}
	if doc.Preamble[0].StartLine != 2 {
		t.Errorf("shebang não deveria contar como documentação, bloco começa em %d", doc.Preamble[0].StartLine)
	}
}

func TestScanFunctions(t *testing.T) {
	content := "def foo():\n" +
		"    \"\"\"doc\"\"\"\n" +
		"    return 1\n" +
		"\n" +
		"def Bar():\n" +
		"    return 2\n"
	doc := ParseString("x.py", content)

	if len(doc.Functions) != 2 {
		t.Fatalf("esperado 2 funções, obtido %d", len(doc.Functions))
	}
	foo, bar := doc.Functions[0], doc.Functions[1]
	if foo.Name != "foo" || foo.StartLine != 1 || foo.BodyStart != 2 || foo.EndLine != 3 {
		t.Errorf("função foo inesperada: %+v", foo)
	}
	if bar.Name != "Bar" || bar.StartLine != 5 || bar.BodyStart != 6 || bar.EndLine != 6 {
		t.Errorf("função Bar inesperada: %+v", bar)
	}
}

func TestScanFunctionsNestedNaoSobrepoe(t *testing.T) {
	content := "def outer():\n" +
		"    def inner():\n" +
		"        pass\n" +
		"    return inner\n"
	doc := ParseString("x.py", content)

	if len(doc.Functions) != 1 {
		t.Fatalf("esperado 1 função (def aninhado ignorado), obtido %d", len(doc.Functions))
	}
	if doc.Functions[0].Name != "outer" || doc.Functions[0].EndLine != 4 {
		t.Errorf("função outer inesperada: %+v", doc.Functions[0])
	}
}

func TestScanFunctionsMetodosDeClasse(t *testing.T) {
	content := "class Foo:\n" +
		"    def bar(self):\n" +
		"        pass\n" +
		"\n" +
		"def baz():\n" +
		"    pass\n"
	doc := ParseString("x.py", content)

	if len(doc.Functions) != 2 {
		t.Fatalf("esperado 2 funções, obtido %d", len(doc.Functions))
	}
	if doc.Functions[0].Name != "bar" || doc.Functions[0].StartLine != 2 {
		t.Errorf("método bar inesperado: %+v", doc.Functions[0])
	}
	if doc.Functions[1].Name != "baz" || doc.Functions[1].StartLine != 5 {
		t.Errorf("função baz inesperada: %+v", doc.Functions[1])
	}
}

func TestScanFunctionsAsyncEAssinaturaMultilinha(t *testing.T) {
	content := "async def fetch(\n" +
		"    url,\n" +
		"):\n" +
		"    \"\"\"Busca.\"\"\"\n" +
		"    return url\n"
	doc := ParseString("x.py", content)

	if len(doc.Functions) != 1 {
		t.Fatalf("esperado 1 função, obtido %d", len(doc.Functions))
	}
	f := doc.Functions[0]
	if f.Name != "fetch" || f.BodyStart != 4 {
		t.Errorf("assinatura multilinha mal resolvida: %+v", f)
	}
}

func TestScanFunctionsDoisNiveisMaisRasos(t *testing.T) {
	content := "def a():\n" +
		"    pass\n" +
		"class C:\n" +
		"    def b(self):\n" +
		"        pass\n"
	doc := ParseString("x.py", content)

	if len(doc.Functions) != 2 {
		t.Fatalf("esperado 2 funções (níveis 0 e 4), obtido %d", len(doc.Functions))
	}
	if doc.Functions[0].Name != "a" || doc.Functions[1].Name != "b" {
		t.Errorf("funções inesperadas: %+v", doc.Functions)
	}
}
