package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks on the catalog data.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(courses []Course, lessons []Lesson, questions []Question) error {
	var errs []string

	courseIDs := make(map[string]bool, len(courses))
	for _, c := range courses {
		if courseIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", c.ID))
		}
		courseIDs[c.ID] = true
	}

	questionIDs := make(map[string]bool, len(questions))
	for _, q := range questions {
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		questionIDs[q.ID] = true
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			errs = append(errs, fmt.Sprintf("question %q: answer index %d out of range", q.ID, q.Answer))
		}
	}

	lessonIDs := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		if lessonIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		lessonIDs[l.ID] = true

		if !courseIDs[l.CourseID] {
			errs = append(errs, fmt.Sprintf("lesson %q references nonexistent course %q", l.ID, l.CourseID))
		}
		if DomainIndex(l.Domain) < 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has unknown domain %q", l.ID, l.Domain))
		}
		if !l.HasVariants() && len(l.QuestionIDs) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has neither concepts nor questions", l.ID))
		}

		// The hard variant is the mastery gate, so it must exist.
		// Easy/medium may be missing; the quiz engine degrades to the
		// hard question for those cascade slots.
		for _, c := range l.Concepts {
			if c.HardQuestionID == "" {
				errs = append(errs, fmt.Sprintf("concept %q in lesson %q has no hard question", c.ConceptID, l.ID))
				continue
			}
			for _, qid := range []string{c.EasyQuestionID, c.MediumQuestionID, c.HardQuestionID} {
				if qid != "" && !questionIDs[qid] {
					errs = append(errs, fmt.Sprintf("concept %q references nonexistent question %q", c.ConceptID, qid))
				}
			}
		}
		for _, qid := range l.QuestionIDs {
			if !questionIDs[qid] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent question %q", l.ID, qid))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
