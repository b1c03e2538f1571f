package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/harentsoaR/medicare-api/internal/models"
)

const blockSeparator = "-----------------------------"

// AppointmentLog appends booking blocks to a plain text file. Appends from
// concurrent requests never interleave.
type AppointmentLog struct {
	path string
	mu   sync.Mutex
}

func NewAppointmentLog(path string) *AppointmentLog {
	return &AppointmentLog{path: path}
}

func (l *AppointmentLog) Path() string {
	return l.path
}

// Append writes one block for rec. Identical bookings are recorded again.
func (l *AppointmentLog) Append(doctor models.Doctor, rec models.AppointmentRecord) error {
	block := FormatBlock(doctor, rec)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open appointment log: %w", err)
	}

	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return fmt.Errorf("write appointment log: %w", err)
	}
	return f.Close()
}

// FormatBlock renders the log block for one booking, newline terminated.
func FormatBlock(doctor models.Doctor, rec models.AppointmentRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Doctor: %s (%s)\n", escapeField(doctor.Name), escapeField(doctor.Specialty))
	fmt.Fprintf(&b, "Patient: %s\n", escapeField(rec.PatientName))
	fmt.Fprintf(&b, "Email: %s\n", escapeField(rec.PatientEmail))
	fmt.Fprintf(&b, "Phone: %s\n", escapeField(rec.PatientPhone))
	fmt.Fprintf(&b, "Date: %s\n", escapeField(rec.Date))
	fmt.Fprintf(&b, "Time: %s\n", escapeField(rec.Time))
	fmt.Fprintf(&b, "Type: %s\n", escapeField(rec.VisitType))
	fmt.Fprintf(&b, "Notes: %s\n", escapeField(rec.Notes))
	b.WriteString(blockSeparator)
	b.WriteString("\n")
	return b.String()
}

// LogBlock is one parsed entry of the appointment log, field values unescaped.
type LogBlock struct {
	Doctor  string
	Patient string
	Email   string
	Phone   string
	Date    string
	Time    string
	Type    string
	Notes   string
}

// ReadBlocks parses every complete block in r.
func ReadBlocks(r io.Reader) ([]LogBlock, error) {
	var (
		blocks []LogBlock
		cur    LogBlock
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == blockSeparator {
			blocks = append(blocks, cur)
			cur = LogBlock{}
			continue
		}

		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			name, value = strings.TrimSuffix(line, ":"), ""
		}
		value = unescapeField(value)

		switch name {
		case "Doctor":
			cur.Doctor = value
		case "Patient":
			cur.Patient = value
		case "Email":
			cur.Email = value
		case "Phone":
			cur.Phone = value
		case "Date":
			cur.Date = value
		case "Time":
			cur.Time = value
		case "Type":
			cur.Type = value
		case "Notes":
			cur.Notes = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read appointment log: %w", err)
	}
	return blocks, nil
}

var (
	fieldEscaper   = strings.NewReplacer(`\`, `\\`, "\r", `\r`, "\n", `\n`)
	fieldUnescaper = strings.NewReplacer(`\\`, `\`, `\r`, "\r", `\n`, "\n")
)

// escapeField keeps a submitted value on a single log line.
func escapeField(s string) string {
	return fieldEscaper.Replace(s)
}

func unescapeField(s string) string {
	return fieldUnescaper.Replace(s)
}
