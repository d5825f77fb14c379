package mint

import (
	"fmt"
	"strings"
)

// FormatError reports malformed or missing required data on ingest. It is
// fatal to the current normalization call: no partial result is produced.
type FormatError struct {
	Source string // the file or source being read
	Err    error
}

func (e *FormatError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("format error: %v", e.Err)
	}
	return fmt.Sprintf("format error in %q: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// AmbiguousLabelError reports that the label-override policy found more than
// one candidate label for a single transaction, or a malformed label cell.
// It halts the batch.
type AmbiguousLabelError struct {
	Date        Date
	Description string
	Labels      []string
}

func (e *AmbiguousLabelError) Error() string {
	if len(e.Labels) > 1 {
		return fmt.Sprintf("ambiguous labels [%s] for transaction %q on %s",
			strings.Join(e.Labels, ", "), e.Description, e.Date)
	}
	return fmt.Sprintf("malformed label field for transaction %q on %s", e.Description, e.Date)
}

// ConfigError reports an unreadable or malformed grouping or exclusion
// configuration file. It is fatal to the operation requesting it.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error reading %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ReviewPendingError reports that fetched data contains records that still
// need to be reviewed or categorized at the source. The merge refuses to
// proceed until they are resolved externally.
type ReviewPendingError struct {
	Unreviewed    int
	Uncategorized int
	ReviewURL     string
}

func (e *ReviewPendingError) Error() string {
	n := e.Unreviewed + e.Uncategorized
	msg := fmt.Sprintf("%d transactions need review", n)
	if e.ReviewURL != "" {
		msg += fmt.Sprintf("; visit %s to classify them, then rerun", e.ReviewURL)
	}
	return msg
}
