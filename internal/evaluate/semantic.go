package evaluate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/design-auditor/internal/types"
)

// validAriaRoles is the fixed ARIA role vocabulary (WAI-ARIA 1.2, abstract
// roles excluded since they must never appear in markup).
var validAriaRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "article": true,
	"banner": true, "button": true, "cell": true, "checkbox": true,
	"columnheader": true, "combobox": true, "complementary": true,
	"contentinfo": true, "definition": true, "dialog": true, "directory": true,
	"document": true, "feed": true, "figure": true, "form": true, "grid": true,
	"gridcell": true, "group": true, "heading": true, "img": true, "link": true,
	"list": true, "listbox": true, "listitem": true, "log": true, "main": true,
	"marquee": true, "math": true, "menu": true, "menubar": true,
	"menuitem": true, "menuitemcheckbox": true, "menuitemradio": true,
	"navigation": true, "none": true, "note": true, "option": true,
	"presentation": true, "progressbar": true, "radio": true,
	"radiogroup": true, "region": true, "row": true, "rowgroup": true,
	"rowheader": true, "scrollbar": true, "search": true, "searchbox": true,
	"separator": true, "slider": true, "spinbutton": true, "status": true,
	"switch": true, "tab": true, "table": true, "tablist": true,
	"tabpanel": true, "term": true, "textbox": true, "timer": true,
	"toolbar": true, "tooltip": true, "tree": true, "treegrid": true,
	"treeitem": true,
}

var validAriaLive = map[string]bool{"off": true, "polite": true, "assertive": true}

// Semantic audits document structure and ARIA usage over the captured page
// HTML: heading hierarchy, role vocabulary, aria-live values, image alt text,
// and form-input label association.
func Semantic(html string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Result{}, &ParseError{Message: "failed to parse page HTML", Cause: err}
	}

	res := Result{}
	res.Violations = append(res.Violations, headingViolations(doc)...)
	res.Violations = append(res.Violations, ariaViolations(doc)...)
	res.Violations = append(res.Violations, imageViolations(doc)...)
	res.Violations = append(res.Violations, labelViolations(doc)...)

	// Observed counts the structural elements the checks examined.
	res.Observed = doc.Find("h1, h2, h3, h4, h5, h6, [role], [aria-live], img, input, select, textarea").Length()

	return res, nil
}

// headingViolations checks that heading levels never skip and that the first
// heading on the page is an h1.
func headingViolations(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	prev := 0
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		level, _ := strconv.Atoi(goquery.NodeName(s)[1:])

		if prev == 0 && level != 1 {
			violations = append(violations, types.Violation{
				RuleCategory: types.CategorySemantic,
				Severity:     types.SeverityError,
				Element:      describeSelection(s),
				Observed:     fmt.Sprintf("h%d", level),
				Expected:     "h1",
				Message:      fmt.Sprintf("first heading on the page is h%d, expected h1", level),
			})
		} else if prev > 0 && level > prev+1 {
			violations = append(violations, types.Violation{
				RuleCategory: types.CategorySemantic,
				Severity:     types.SeverityError,
				Element:      describeSelection(s),
				Observed:     fmt.Sprintf("h%d after h%d", level, prev),
				Expected:     fmt.Sprintf("h%d or lower", prev+1),
				Message:      fmt.Sprintf("heading level skips from h%d to h%d", prev, level),
			})
		}
		prev = level
	})

	return violations
}

func ariaViolations(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	doc.Find("[role]").Each(func(_ int, s *goquery.Selection) {
		role, _ := s.Attr("role")
		if !validAriaRoles[strings.ToLower(strings.TrimSpace(role))] {
			violations = append(violations, types.Violation{
				RuleCategory: types.CategorySemantic,
				Severity:     types.SeverityError,
				Element:      describeSelection(s),
				Observed:     role,
				Expected:     "a role from the ARIA vocabulary",
				Message:      fmt.Sprintf("role %q is not a valid ARIA role", role),
			})
		}
	})

	doc.Find("[aria-live]").Each(func(_ int, s *goquery.Selection) {
		live, _ := s.Attr("aria-live")
		if !validAriaLive[strings.ToLower(strings.TrimSpace(live))] {
			violations = append(violations, types.Violation{
				RuleCategory: types.CategorySemantic,
				Severity:     types.SeverityError,
				Element:      describeSelection(s),
				Observed:     live,
				Expected:     "off, polite, or assertive",
				Message:      fmt.Sprintf("aria-live value %q is invalid", live),
			})
		}
	})

	return violations
}

// imageViolations requires alt text or an explicit decorative marker on every
// image.
func imageViolations(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, hasAlt := s.Attr("alt"); hasAlt {
			return
		}
		if role, ok := s.Attr("role"); ok {
			r := strings.ToLower(strings.TrimSpace(role))
			if r == "presentation" || r == "none" {
				return
			}
		}
		if hidden, ok := s.Attr("aria-hidden"); ok && hidden == "true" {
			return
		}
		violations = append(violations, types.Violation{
			RuleCategory: types.CategorySemantic,
			Severity:     types.SeverityError,
			Element:      describeSelection(s),
			Observed:     "no alt attribute",
			Expected:     "alt text or an explicit decorative marker",
			Message:      "image has no alt text and is not marked decorative",
		})
	})

	return violations
}

// labelViolations requires every form input to have an associated label via a
// matching <label for>, aria-label, or aria-labelledby.
func labelViolations(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	labeledIDs := make(map[string]bool)
	doc.Find("label[for]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("for"); ok && id != "" {
			labeledIDs[id] = true
		}
	})

	doc.Find("input, select, textarea").Each(func(_ int, s *goquery.Selection) {
		if typ, ok := s.Attr("type"); ok {
			t := strings.ToLower(typ)
			if t == "hidden" || t == "submit" || t == "button" {
				return
			}
		}
		if id, ok := s.Attr("id"); ok && labeledIDs[id] {
			return
		}
		if label, ok := s.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
			return
		}
		if labelledBy, ok := s.Attr("aria-labelledby"); ok && strings.TrimSpace(labelledBy) != "" {
			return
		}
		// An input nested inside a <label> is implicitly associated.
		if s.ParentsFiltered("label").Length() > 0 {
			return
		}
		violations = append(violations, types.Violation{
			RuleCategory: types.CategorySemantic,
			Severity:     types.SeverityError,
			Element:      describeSelection(s),
			Observed:     "no associated label",
			Expected:     "label[for], aria-label, or aria-labelledby",
			Message:      "form input has no associated label",
		})
	})

	return violations
}

// describeSelection builds a short CSS-path style descriptor for a selection.
func describeSelection(s *goquery.Selection) string {
	name := goquery.NodeName(s)
	if id, ok := s.Attr("id"); ok && id != "" {
		return fmt.Sprintf("%s#%s", name, id)
	}
	if class, ok := s.Attr("class"); ok && class != "" {
		first := strings.Fields(class)
		if len(first) > 0 {
			return fmt.Sprintf("%s.%s", name, first[0])
		}
	}
	return name
}
