package stats

import (
	"context"
	"strings"
)

// UnitsForCiv lists the units available to a civilization with their base unit data.
func (s *Store) UnitsForCiv(ctx context.Context, civID string) ([]UnitDetail, error) {
	return s.unitsForCiv(ctx, civID, false)
}

// UniqueUnitsForCiv lists only the units unique to a civilization.
func (s *Store) UniqueUnitsForCiv(ctx context.Context, civID string) ([]UnitDetail, error) {
	return s.unitsForCiv(ctx, civID, true)
}

func (s *Store) unitsForCiv(ctx context.Context, civID string, uniqueOnly bool) ([]UnitDetail, error) {
	var out []UnitDetail
	q := s.db.WithContext(ctx).
		Table("civ_units AS cu").
		Select("cu.*, bu.name AS unit_name, bu.type AS unit_type, bu.description AS unit_description, bu.icon_url").
		Joins("JOIN base_units bu ON bu.id = cu.unit_id").
		Where("cu.civ_id = ?", strings.ToLower(civID))
	if uniqueOnly {
		q = q.Where("cu.unique_to_civ = ?", true)
	}
	if err := q.Order("cu.age ASC, bu.name ASC").Scan(&out).Error; err != nil {
		return nil, wrapDataAccess("list civ_units", err)
	}
	return out, nil
}

// UnitComparison returns every civilization's variant of one base unit, ordered by civilization name.
func (s *Store) UnitComparison(ctx context.Context, unitID string) ([]UnitVariant, error) {
	var out []UnitVariant
	err := s.db.WithContext(ctx).
		Table("civ_units AS cu").
		Select("cu.*, c.name AS civ_name, bu.name AS unit_name").
		Joins("JOIN civilizations c ON c.id = cu.civ_id").
		Joins("JOIN base_units bu ON bu.id = cu.unit_id").
		Where("cu.unit_id = ?", strings.ToLower(unitID)).
		Order("c.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, wrapDataAccess("compare civ_units", err)
	}
	return out, nil
}

// BuildingsForCiv lists the buildings available to a civilization.
func (s *Store) BuildingsForCiv(ctx context.Context, civID string) ([]BuildingDetail, error) {
	return s.buildingsForCiv(ctx, civID, false)
}

// UniqueBuildingsForCiv lists only the buildings unique to a civilization.
func (s *Store) UniqueBuildingsForCiv(ctx context.Context, civID string) ([]BuildingDetail, error) {
	return s.buildingsForCiv(ctx, civID, true)
}

func (s *Store) buildingsForCiv(ctx context.Context, civID string, uniqueOnly bool) ([]BuildingDetail, error) {
	var out []BuildingDetail
	q := s.db.WithContext(ctx).
		Table("civ_buildings AS cb").
		Select("cb.*, bb.name AS building_name, bb.type AS building_type, bb.description AS building_description, bb.icon_url").
		Joins("JOIN base_buildings bb ON bb.id = cb.building_id").
		Where("cb.civ_id = ?", strings.ToLower(civID))
	if uniqueOnly {
		q = q.Where("cb.unique_to_civ = ?", true)
	}
	if err := q.Order("cb.age ASC, bb.name ASC").Scan(&out).Error; err != nil {
		return nil, wrapDataAccess("list civ_buildings", err)
	}
	return out, nil
}

// TechnologiesForCiv lists the technologies available to a civilization.
func (s *Store) TechnologiesForCiv(ctx context.Context, civID string) ([]TechnologyDetail, error) {
	return s.technologiesForCiv(ctx, civID, false)
}

// UniqueTechnologiesForCiv lists only the technologies unique to a civilization.
func (s *Store) UniqueTechnologiesForCiv(ctx context.Context, civID string) ([]TechnologyDetail, error) {
	return s.technologiesForCiv(ctx, civID, true)
}

func (s *Store) technologiesForCiv(ctx context.Context, civID string, uniqueOnly bool) ([]TechnologyDetail, error) {
	var out []TechnologyDetail
	q := s.db.WithContext(ctx).
		Table("civ_technologies AS ct").
		Select("ct.*, bt.name AS technology_name, bt.type AS technology_type, bt.description AS technology_description, bt.icon_url").
		Joins("JOIN base_technologies bt ON bt.id = ct.technology_id").
		Where("ct.civ_id = ?", strings.ToLower(civID))
	if uniqueOnly {
		q = q.Where("ct.unique_to_civ = ?", true)
	}
	if err := q.Order("bt.name ASC").Scan(&out).Error; err != nil {
		return nil, wrapDataAccess("list civ_technologies", err)
	}
	return out, nil
}
