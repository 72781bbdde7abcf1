// Utilities for parsing cURL commands.
//
// The Web UI's "copy as cURL" output carries the SID session cookie, which
// lets an already-authenticated browser session be reused without prompting
// for credentials.
package shared

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CurlHeaders represents parsed headers and cookies from a cURL command.
type CurlHeaders struct {
	Headers map[string]string
	Cookie  string
}

// ParseCurlFile reads a .sh file containing a cURL command and extracts headers.
func ParseCurlFile(filepath string) (*CurlHeaders, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read curl file: %w", err)
	}

	return ParseCurlCommand(content)
}

var (
	headerRegex = regexp.MustCompile(`-H\s+'([^']+)'|-H\s+"([^"]+)"`)
	cookieRegex = regexp.MustCompile(`-b\s+'([^']+)'|-b\s+"([^"]+)"`)
)

// ParseCurlCommand parses a cURL command string and extracts headers.
func ParseCurlCommand(data []byte) (*CurlHeaders, error) {
	curlCmd := string(data)
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")
	curlCmd = strings.ReplaceAll(curlCmd, "\\", "")

	headers := make(map[string]string)
	var cookie string

	matches := headerRegex.FindAllStringSubmatch(curlCmd, -1)
	for _, match := range matches {
		headerLine := match[1]
		if headerLine == "" {
			headerLine = match[2]
		}

		parts := strings.SplitN(headerLine, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.EqualFold(key, "cookie") {
			if cookie == "" {
				cookie = value
			}
			continue
		}
		headers[key] = value
	}

	// An explicit -b flag wins over a Cookie header.
	if cookieMatches := cookieRegex.FindStringSubmatch(curlCmd); len(cookieMatches) > 1 {
		if cookieMatches[1] != "" {
			cookie = cookieMatches[1]
		} else {
			cookie = cookieMatches[2]
		}
	}

	if len(headers) == 0 && cookie == "" {
		return nil, fmt.Errorf("no headers found in curl command")
	}

	return &CurlHeaders{
		Headers: headers,
		Cookie:  cookie,
	}, nil
}

// SessionCookie extracts the qBittorrent SID value from the cookie string.
//
// Returns an empty string when no SID cookie is present.
func (c *CurlHeaders) SessionCookie() string {
	for _, pair := range strings.Split(c.Cookie, ";") {
		pair = strings.TrimSpace(pair)
		if name, value, ok := strings.Cut(pair, "="); ok && name == "SID" {
			return value
		}
	}
	return ""
}
