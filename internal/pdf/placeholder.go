// Package pdf generates the placeholder document served when a record's
// real payload is no longer available.
package pdf

import (
	"bytes"
	"fmt"
)

// Placeholder builds a minimal one-page PDF whose page shows the given
// title and a note that the original content is unavailable. The output is
// a structurally valid PDF with a correct cross-reference table.
func Placeholder(title string) []byte {
	content := fmt.Sprintf(
		"BT /F1 18 Tf 72 720 Td (%s) Tj ET\n"+
			"BT /F1 12 Tf 72 690 Td (Original content is unavailable. Please re-upload the document.) Tj ET\n",
		escapeString(title),
	)

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf,
		"trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset,
	)

	return buf.Bytes()
}

// escapeString escapes the characters that delimit PDF literal strings.
func escapeString(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			out.WriteByte('\\')
			out.WriteRune(r)
		case '\n', '\r':
			out.WriteByte(' ')
		default:
			if r < 128 {
				out.WriteRune(r)
			}
		}
	}
	return out.String()
}
