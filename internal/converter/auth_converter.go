package converter

import (
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/service"
)

// TokenPairToResponse converts an issued token pair to its DTO.
func TokenPairToResponse(pair *service.TokenPair) dto.TokenResponse {
	if pair == nil {
		return dto.TokenResponse{}
	}
	return dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
