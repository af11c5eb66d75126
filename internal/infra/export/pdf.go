package export

import (
	"bytes"
	"fmt"
	"strings"
)

// renderPDF emits a minimal single-page PDF 1.4 document with the given
// text lines in Helvetica. No external PDF library is pulled in for this;
// the export is plain text and the fixed object layout below is valid for
// any line count that fits one page stream.
func renderPDF(lines []string) ([]byte, error) {
	var content strings.Builder
	content.WriteString("BT\n/F1 10 Tf\n")
	y := 780
	for _, line := range lines {
		fmt.Fprintf(&content, "1 0 0 1 40 %d Tm\n(%s) Tj\n", y, escapePDFText(line))
		y -= 14
		if y < 40 {
			break
		}
	}
	content.WriteString("ET\n")
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes(), nil
}

// escapePDFText escapes the characters with special meaning inside a PDF
// literal string.
func escapePDFText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

	return r.Replace(s)
}
