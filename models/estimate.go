// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EstimateImage is an image attached to an estimation request.
type EstimateImage struct {
	MIMEType string
	Data     []byte
}

// EstimateRequest asks the estimation collaborator to guess the nutrition
// values of a food. At least one of Description or Image must be set.
type EstimateRequest struct {
	Description string
	Image       *EstimateImage
}

// Empty reports whether the request carries neither text nor image.
func (r EstimateRequest) Empty() bool {
	return r.Description == "" && (r.Image == nil || len(r.Image.Data) == 0)
}

// NutritionEstimate is the best-effort answer of the estimation collaborator.
// Missing numeric fields are zero.
type NutritionEstimate struct {
	Name    string  `json:"name"`
	Kcal    float64 `json:"kcal"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}
