package bumper

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MaskSecret asks the Actions runner to redact secret from all later log output
func MaskSecret(w io.Writer, secret string) error {
	if secret == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "::add-mask::%s\n", secret)
	return err
}

// WriteOutputs writes res as "name=value" lines, the format of $GITHUB_OUTPUT
func WriteOutputs(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w, "version=%s\nnew-version=%t\n", res.Version, res.NewVersion)
	return err
}

// WriteOutputFile appends the outputs of res to the file at path
func WriteOutputFile(path string, res Result) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	if err := WriteOutputs(f, res); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// WriteJSON writes res as a single JSON object
func WriteJSON(w io.Writer, res Result) error {
	return json.NewEncoder(w).Encode(res)
}
