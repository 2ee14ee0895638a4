package fees

import "github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

// ApplicableFeeHeads returns the subset of heads that bind the given student,
// preserving input order. Pure; no side effects.
func ApplicableFeeHeads(student *models.Student, heads []*models.FeeHead) []*models.FeeHead {
	applicable := make([]*models.FeeHead, 0, len(heads))
	for _, head := range heads {
		if feeHeadApplies(student, head) {
			applicable = append(applicable, head)
		}
	}
	return applicable
}

// feeHeadApplies implements the applicability rule: a head scoped to "all"
// always binds; a filtered head binds when both its stream and caste
// conditions hold, where an absent filter matches everyone. Filters on an
// "all" head are ignored even if present.
func feeHeadApplies(student *models.Student, head *models.FeeHead) bool {
	switch head.ApplyTo {
	case models.ApplyToAll:
		return true
	case models.ApplyToFiltered:
		streamMatch := head.Filters.StreamID == nil ||
			(student.StreamID != nil && *head.Filters.StreamID == *student.StreamID)

		casteMatch := head.Filters.CasteCategory == nil ||
			NormalizeCasteCategory(*head.Filters.CasteCategory) == NormalizeCasteCategory(student.CasteCategory)

		return streamMatch && casteMatch
	}
	return false
}
