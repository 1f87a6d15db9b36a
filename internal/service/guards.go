package service

import "github.com/AliAzlanAziz/fyp-portal-api/internal/models"

// Authorization guards are pure predicates over (principal, contract).
// They run strictly before any state transition, and callers map a
// failed guard and an unknown contract id to the same unauthorized
// result so responses never reveal whether the contract exists.

// IsContractAdvisor reports whether the principal is the advisor named
// on the contract.
func IsContractAdvisor(p *models.JWTClaims, c *models.Contract) bool {
	if p == nil || c == nil {
		return false
	}
	return p.UserID == c.AdvisorID
}

// IsContractStudent reports whether the principal is the student who
// owns the contract.
func IsContractStudent(p *models.JWTClaims, c *models.Contract) bool {
	if p == nil || c == nil {
		return false
	}
	return p.UserID == c.StudentID
}

// IsPanelMember reports whether the principal sits on the panel assigned
// to the contract. Membership is resolved by the caller.
func IsPanelMember(p *models.JWTClaims, c *models.Contract, memberIDs []string) bool {
	if p == nil || c == nil || c.PanelID == nil {
		return false
	}
	for _, id := range memberIDs {
		if id == p.UserID {
			return true
		}
	}
	return false
}
