package model

// Region represents a geographic region as persisted in the regions table
type Region struct {
	Key       int64  `db:"key" json:"-"`
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	ShortName string `db:"short_name" json:"shortName"`
}

// RegionDTO is the externally visible shape of a region
type RegionDTO struct {
	ID        string `json:"id" msgpack:"id" binding:"notblank,region_id"`
	Name      string `json:"name" msgpack:"name" binding:"notblank,region_name"`
	ShortName string `json:"shortName" msgpack:"shortName" binding:"region_short_name"`
}

// NewRegion builds a region entity from a transfer object.
// The surrogate key is left unset for the store to assign.
func NewRegion(dto RegionDTO) *Region {
	return &Region{
		ID:        dto.ID,
		Name:      dto.Name,
		ShortName: dto.ShortName,
	}
}

// ToDTO strips the surrogate key
func (r Region) ToDTO() RegionDTO {
	return RegionDTO{
		ID:        r.ID,
		Name:      r.Name,
		ShortName: r.ShortName,
	}
}
