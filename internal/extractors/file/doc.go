// Package file extracts text content from local files.
//
// Supported formats are plain text (.txt), Markdown (.md), and Word
// documents (.docx). DOCX files are read as ZIP archives and the text is
// pulled from word/document.xml; no external conversion tool is needed.
package file
