package helper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedPackageFile là kết quả đọc tên file tài liệu tour,
// dạng "<destination> - <N>Days <M>Nights Tour Package"
type ParsedPackageFile struct {
	Name           string
	Destination    string
	DurationDays   int
	DurationNights int
}

var (
	daysRe   = regexp.MustCompile(`(\d+)\s*[Dd]ay`)
	nightsRe = regexp.MustCompile(`(\d+)\s*[Nn]ight`)
)

func ParsePackageFilename(filename string) ParsedPackageFile {
	name := strings.ReplaceAll(filename, "Tour Package", "")
	name = strings.ReplaceAll(name, "tour package", "")
	name = strings.Join(strings.Fields(name), " ")

	var destination, durationPart string
	if parts := strings.SplitN(name, "-", 2); len(parts) > 1 {
		destination = strings.TrimSpace(parts[0])
		durationPart = strings.TrimSpace(parts[1])
	} else {
		words := strings.Fields(name)
		if len(words) > 0 {
			destination = words[0]
			durationPart = strings.Join(words[1:], " ")
		}
	}

	days, nights := 1, 0
	if m := daysRe.FindStringSubmatch(durationPart); m != nil {
		days, _ = strconv.Atoi(m[1])
	}
	if m := nightsRe.FindStringSubmatch(durationPart); m != nil {
		nights, _ = strconv.Atoi(m[1])
	}

	return ParsedPackageFile{
		Name:           fmt.Sprintf("%dD/%dN %s Tour Package", days, nights, destination),
		Destination:    destination,
		DurationDays:   days,
		DurationNights: nights,
	}
}

// DocContent là các khối text rút ra từ nội dung tài liệu
type DocContent struct {
	Description string
	Inclusions  string
	Exclusions  string
	Itinerary   string
}

// ExtractDocContent tìm các mục theo từ khóa, lấy cửa sổ text phía sau.
// Heuristic thô, khớp hành vi công cụ nhập liệu cũ.
func ExtractDocContent(content string) DocContent {
	result := DocContent{}
	if content == "" {
		return result
	}

	if len(content) > 500 {
		result.Description = content[:500]
	} else {
		result.Description = content
	}

	lower := strings.ToLower(content)
	if idx := strings.Index(lower, "inclusion"); idx >= 0 {
		result.Inclusions = window(content, idx, 300)
	}
	if idx := strings.Index(lower, "exclusion"); idx >= 0 {
		result.Exclusions = window(content, idx, 300)
	}
	if strings.Contains(lower, "itinerary") || strings.Contains(lower, "day 1") {
		result.Itinerary = content
	}
	return result
}

func window(s string, start, size int) string {
	end := start + size
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// CategoryForDestination map điểm đến -> tên danh mục, trùng với dữ liệu seed
func CategoryForDestination(destination string) string {
	categoryMap := map[string]string{
		"goa":       "Beach",
		"kerala":    "Beach",
		"kochi":     "Beach",
		"alleppey":  "Backwaters",
		"alappuzha": "Backwaters",
		"ooty":      "Hill Station",
		"shimla":    "Hill Station",
		"coorg":     "Hill Station",
		"munnar":    "Hill Station",
		"kashmir":   "Religious",
		"jammu":     "Religious",
		"rajasthan": "Heritage",
		"gujarat":   "Heritage",
		"calicut":   "City Tour",
	}
	dest := strings.ToLower(destination)
	for key, category := range categoryMap {
		if strings.Contains(dest, key) {
			return category
		}
	}
	return "Tour Packages"
}

func StateForDestination(destination string) string {
	stateMap := map[string]string{
		"goa":       "Goa",
		"kerala":    "Kerala",
		"kochi":     "Kerala",
		"alleppey":  "Kerala",
		"calicut":   "Kerala",
		"ooty":      "Tamil Nadu",
		"shimla":    "Himachal Pradesh",
		"coorg":     "Karnataka",
		"kashmir":   "Jammu and Kashmir",
		"jammu":     "Jammu and Kashmir",
		"rajasthan": "Rajasthan",
		"gujarat":   "Gujarat",
	}
	dest := strings.ToLower(destination)
	for key, state := range stateMap {
		if strings.Contains(dest, key) {
			return state
		}
	}
	return "India"
}

// DefaultItinerary sinh lịch trình mặc định khi tài liệu không có mục itinerary
func DefaultItinerary(destination string, days int) string {
	lines := []string{}
	for day := 1; day <= days; day++ {
		switch {
		case day == 1:
			lines = append(lines, fmt.Sprintf("Day %d: Arrival at %s", day, destination))
			lines = append(lines, "- Check-in to hotel")
			lines = append(lines, "- Evening at leisure")
		case day == days:
			lines = append(lines, fmt.Sprintf("\nDay %d: Departure", day))
			lines = append(lines, "- Check-out from hotel")
			lines = append(lines, "- Transfer to airport/station")
		default:
			lines = append(lines, fmt.Sprintf("\nDay %d: %s Sightseeing", day, destination))
			lines = append(lines, "- Local sightseeing tours")
			lines = append(lines, "- Visit major attractions")
		}
	}
	return strings.Join(lines, "\n")
}
