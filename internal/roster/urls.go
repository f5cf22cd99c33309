package roster

import (
	"fmt"
	"io"

	"creditor/pkg/domain"
)

// ExtractReferralURLs mines the given text (usually a CSV export, though any
// text works) for referral URLs on the given host. Results are deduplicated
// and keep first-seen order.
func ExtractReferralURLs(content string, host string) []string {
	matches := domain.ReferralPattern(host).FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))

	for _, url := range matches {
		if _, ok := seen[url]; ok {
			continue
		}

		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	return urls
}

// ReadReferralURLs is ExtractReferralURLs over a reader.
func ReadReferralURLs(r io.Reader, host string) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read referral source: %w", err)
	}

	return ExtractReferralURLs(string(content), host), nil
}
