package tablegen

import (
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/realh/logi/huffman"
	"github.com/realh/logi/huffmantesting"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func loadSample(t *testing.T) [][]huffman.Entry {
	f, err := os.Open("testdata/sample.t1")
	require.NoError(t, err)
	defer f.Close()
	ts, err := huffman.Load(f)
	require.NoError(t, err)
	flat := ts.Flatten()
	require.NoError(t, ts.Verify(flat))
	return flat
}

func TestGenerateCPPGolden(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateCPPGolden"})
	g := NewGenerator(tc.Log)

	out, err := g.Generate(FormatCPP, '1', loadSample(t))
	require.NoError(t, err)
	golden.Assert(t, string(out), "sample.t1.cpp.golden")
}

func TestGenerateCPPTwoSingleBitCodes(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateCPPTwoSingleBitCodes"})
	flat := tc.LoadTables("START:0:a", "START:1:b").Flatten()

	out, err := NewGenerator(tc.Log).Generate(FormatCPP, '2', flat)
	require.NoError(t, err)
	text := string(out)

	require.Contains(t, text, "static HuffmanNode table00[] = {\n    {0xe1, 0xe2}\n};\n")
	require.Equal(t, 1, strings.Count(text, "static HuffmanNode"))
	require.Contains(t, text, "HuffmanNode *huffman_table2[] = {")
}

func TestGenerateCPPDispatchHas128Slots(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateCPPDispatchHas128Slots"})
	flat := tc.LoadTables("START:0:a", "START:1:b", "a:0:b", "a:1:STOP", "0x7f:1:a", "0x7f:0:a").Flatten()

	out, err := NewGenerator(tc.Log).Generate(FormatCPP, '1', flat)
	require.NoError(t, err)
	text := string(out)

	start := strings.Index(text, "HuffmanNode *huffman_table1[] = {")
	require.GreaterOrEqual(t, start, 0)
	body := text[start:]
	body = body[strings.Index(body, "{")+1 : strings.Index(body, "};")]

	var slots []string
	for _, s := range strings.Split(body, ",") {
		slots = append(slots, strings.TrimSpace(s))
	}
	require.Len(t, slots, huffman.MaxRootKeys)
	for i, s := range slots {
		switch i {
		case 0:
			require.Equal(t, "table00", s)
		case 'a':
			require.Equal(t, "table61", s)
		case 0x7f:
			require.Equal(t, "table7f", s)
		default:
			require.Equal(t, "NULL", s, "slot %d", i)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateIsDeterministic"})
	g := NewGenerator(tc.Log)
	for _, format := range []Format{FormatCPP, FormatGo, FormatCBOR} {
		first, err := g.Generate(format, '1', loadSample(t))
		require.NoError(t, err)
		second, err := g.Generate(format, '1', loadSample(t))
		require.NoError(t, err)
		require.Equal(t, first, second, "format %s", format)
	}
}

func TestGenerateGoParses(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateGoParses"})
	g := NewGenerator(tc.Log, WithGoPackage("dvbtext"), WithGoNodeType("huffNode"))

	out, err := g.Generate(FormatGo, '2', loadSample(t))
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "table2.go", out, parser.ParseComments)
	require.NoError(t, err)
	require.Equal(t, "dvbtext", f.Name.Name)

	text := string(out)
	require.Contains(t, text, "var huffmanTable2Key00 = []huffNode{\n\t{0x01, 0x05}, {0xd4, 0x02}, {0xc1, 0x03}, {0xc2, 0xc3},\n")
	require.Contains(t, text, "var huffmanTable2 = [128][]huffNode{\n\t0x00: huffmanTable2Key00,\n\t0x01: huffmanTable2Key01,\n")
	require.Contains(t, text, "\t0x68: huffmanTable2Key68,\n}\n")
}

func TestGenerateCBORRoundTrip(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateCBORRoundTrip"})
	flat := loadSample(t)

	out, err := NewGenerator(tc.Log).Generate(FormatCBOR, '1', flat)
	require.NoError(t, err)

	doc, err := DecodeDocument(out)
	require.NoError(t, err)
	require.Equal(t, NewDocument('1', flat), doc)
	require.Len(t, doc.Tables, 4)
	require.Equal(t, [][2]uint8{{0xe8, 0x80}}, doc.Tables['T'])
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateRejectsBadArguments"})
	g := NewGenerator(tc.Log)
	flat := tc.LoadTables("START:0:a", "START:1:b").Flatten()

	_, err := g.Generate("rust", '1', flat)
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = g.Generate(FormatCPP, '.', flat)
	require.ErrorIs(t, err, ErrBadSuffix)

	_, err = g.Generate(FormatCPP, '1', flat[:10])
	require.ErrorIs(t, err, ErrTableCount)
}

func TestGenerateCPPOptions(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: "TestGenerateCPPOptions"})
	g := NewGenerator(tc.Log,
		WithTableName("freesat_huffman_table"), WithNamespace("dvb"), WithInclude("huffman.h"))
	flat := tc.LoadTables("START:0:a", "START:1:b").Flatten()

	out, err := g.Generate(FormatCPP, '1', flat)
	require.NoError(t, err)
	text := string(out)
	require.Contains(t, text, "#include \"huffman.h\"\n")
	require.Contains(t, text, "namespace dvb\n{\n")
	require.Contains(t, text, "HuffmanNode *freesat_huffman_table1[] = {")
}
