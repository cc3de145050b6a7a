package stats

import "time"

// Civilization is a playable faction. The reference tables are maintained outside this module.
type Civilization struct {
	ID          string `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Overview    string `gorm:"column:overview;type:text" json:"overview,omitempty"`
}

func (Civilization) TableName() string { return "civilizations" }

type BaseUnit struct {
	ID          string `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Type        string `gorm:"column:type;type:text" json:"type,omitempty"`
	IconURL     string `gorm:"column:icon_url;type:text" json:"icon_url,omitempty"`
}

func (BaseUnit) TableName() string { return "base_units" }

type BaseBuilding struct {
	ID          string `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Type        string `gorm:"column:type;type:text" json:"type,omitempty"`
	IconURL     string `gorm:"column:icon_url;type:text" json:"icon_url,omitempty"`
}

func (BaseBuilding) TableName() string { return "base_buildings" }

type BaseTechnology struct {
	ID          string `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Type        string `gorm:"column:type;type:text" json:"type,omitempty"`
	IconURL     string `gorm:"column:icon_url;type:text" json:"icon_url,omitempty"`
}

func (BaseTechnology) TableName() string { return "base_technologies" }

// CivUnit carries the per-civilization variant of a base unit.
type CivUnit struct {
	CivID         string  `gorm:"column:civ_id;type:text;primaryKey" json:"civ_id"`
	UnitID        string  `gorm:"column:unit_id;type:text;primaryKey" json:"unit_id"`
	UniqueToCiv   bool    `gorm:"column:unique_to_civ;not null;default:false" json:"unique_to_civ"`
	Age           int     `gorm:"column:age" json:"age"`
	CostFood      int     `gorm:"column:cost_food" json:"cost_food"`
	CostWood      int     `gorm:"column:cost_wood" json:"cost_wood"`
	CostStone     int     `gorm:"column:cost_stone" json:"cost_stone"`
	CostGold      int     `gorm:"column:cost_gold" json:"cost_gold"`
	BuildTime     int     `gorm:"column:build_time" json:"build_time"`
	Hitpoints     int     `gorm:"column:hitpoints" json:"hitpoints"`
	MovementSpeed float64 `gorm:"column:movement_speed" json:"movement_speed"`
}

func (CivUnit) TableName() string { return "civ_units" }

type CivBuilding struct {
	CivID       string `gorm:"column:civ_id;type:text;primaryKey" json:"civ_id"`
	BuildingID  string `gorm:"column:building_id;type:text;primaryKey" json:"building_id"`
	UniqueToCiv bool   `gorm:"column:unique_to_civ;not null;default:false" json:"unique_to_civ"`
	Age         int    `gorm:"column:age" json:"age"`
	CostFood    int    `gorm:"column:cost_food" json:"cost_food"`
	CostWood    int    `gorm:"column:cost_wood" json:"cost_wood"`
	CostStone   int    `gorm:"column:cost_stone" json:"cost_stone"`
	CostGold    int    `gorm:"column:cost_gold" json:"cost_gold"`
	BuildTime   int    `gorm:"column:build_time" json:"build_time"`
	Hitpoints   int    `gorm:"column:hitpoints" json:"hitpoints"`
}

func (CivBuilding) TableName() string { return "civ_buildings" }

type CivTechnology struct {
	CivID        string `gorm:"column:civ_id;type:text;primaryKey" json:"civ_id"`
	TechnologyID string `gorm:"column:technology_id;type:text;primaryKey" json:"technology_id"`
	UniqueToCiv  bool   `gorm:"column:unique_to_civ;not null;default:false" json:"unique_to_civ"`
	// Age is NULL for technologies available in every age.
	Age          *int `gorm:"column:age" json:"age,omitempty"`
	CostFood     int  `gorm:"column:cost_food" json:"cost_food"`
	CostWood     int  `gorm:"column:cost_wood" json:"cost_wood"`
	CostStone    int  `gorm:"column:cost_stone" json:"cost_stone"`
	CostGold     int  `gorm:"column:cost_gold" json:"cost_gold"`
	ResearchTime int  `gorm:"column:research_time" json:"research_time"`
}

func (CivTechnology) TableName() string { return "civ_technologies" }

// CivMetaStat is the live win/pick rate row for one (civ, leaderboard, rank) key.
type CivMetaStat struct {
	ID          int64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CivID       string        `gorm:"column:civ_id;type:text;not null;uniqueIndex:idx_civ_meta_stats_key,priority:1" json:"civ_id"`
	Leaderboard string        `gorm:"column:leaderboard;type:text;not null;uniqueIndex:idx_civ_meta_stats_key,priority:2" json:"leaderboard"`
	RankLevel   string        `gorm:"column:rank_level;type:text;not null;uniqueIndex:idx_civ_meta_stats_key,priority:3" json:"rank_level"`
	WinRate     float64       `gorm:"column:win_rate" json:"win_rate"`
	PickRate    float64       `gorm:"column:pick_rate" json:"pick_rate"`
	GamesCount  int           `gorm:"column:games_count" json:"games_count"`
	Wins        int           `gorm:"column:wins" json:"wins"`
	Losses      int           `gorm:"column:losses" json:"losses"`
	AvgDuration float64       `gorm:"column:avg_duration" json:"avg_duration"`
	Patch       string        `gorm:"column:patch;type:text" json:"patch,omitempty"`
	LastUpdated time.Time     `gorm:"column:last_updated;not null" json:"last_updated"`
	Civ         *Civilization `gorm:"foreignKey:CivID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CivMetaStat) TableName() string { return "civilization_meta_stats" }

// LeaderboardPlayer is the latest snapshot of a ranked player.
type LeaderboardPlayer struct {
	PlayerID    int64     `gorm:"column:player_id;primaryKey;autoIncrement:false" json:"player_id"`
	PlayerName  string    `gorm:"column:player_name;type:text;not null" json:"player_name"`
	Rank        int       `gorm:"column:rank" json:"rank"`
	Rating      int       `gorm:"column:rating" json:"rating"`
	GamesCount  int       `gorm:"column:games_count" json:"games_count"`
	Wins        int       `gorm:"column:wins" json:"wins"`
	Losses      int       `gorm:"column:losses" json:"losses"`
	WinRate     float64   `gorm:"column:win_rate" json:"win_rate"`
	Leaderboard string    `gorm:"column:leaderboard;type:text;not null;index" json:"leaderboard"`
	LastUpdated time.Time `gorm:"column:last_updated;not null" json:"last_updated"`
}

func (LeaderboardPlayer) TableName() string { return "leaderboard_players" }

// ReferenceModels returns the reference tables in dependency order.
func ReferenceModels() []any {
	return []any{
		&Civilization{}, &BaseUnit{}, &BaseBuilding{}, &BaseTechnology{},
		&CivUnit{}, &CivBuilding{}, &CivTechnology{},
	}
}

// LiveModels returns the tables written by sync.
func LiveModels() []any {
	return []any{&CivMetaStat{}, &LeaderboardPlayer{}}
}

// UnitDetail is a civ_units row joined with its base unit.
type UnitDetail struct {
	CivUnit
	UnitName        string `gorm:"column:unit_name" json:"unit_name"`
	UnitType        string `gorm:"column:unit_type" json:"unit_type,omitempty"`
	UnitDescription string `gorm:"column:unit_description" json:"unit_description,omitempty"`
	IconURL         string `gorm:"column:icon_url" json:"icon_url,omitempty"`
}

// UnitVariant is one civilization's version of a unit, for cross-civ comparison.
type UnitVariant struct {
	CivUnit
	CivName  string `gorm:"column:civ_name" json:"civ_name"`
	UnitName string `gorm:"column:unit_name" json:"unit_name"`
}

// BuildingDetail is a civ_buildings row joined with its base building.
type BuildingDetail struct {
	CivBuilding
	BuildingName        string `gorm:"column:building_name" json:"building_name"`
	BuildingType        string `gorm:"column:building_type" json:"building_type,omitempty"`
	BuildingDescription string `gorm:"column:building_description" json:"building_description,omitempty"`
	IconURL             string `gorm:"column:icon_url" json:"icon_url,omitempty"`
}

// TechnologyDetail is a civ_technologies row joined with its base technology.
type TechnologyDetail struct {
	CivTechnology
	TechnologyName        string `gorm:"column:technology_name" json:"technology_name"`
	TechnologyType        string `gorm:"column:technology_type" json:"technology_type,omitempty"`
	TechnologyDescription string `gorm:"column:technology_description" json:"technology_description,omitempty"`
	IconURL               string `gorm:"column:icon_url" json:"icon_url,omitempty"`
}

// MetaStatView is a meta-stat row with the civilization display name.
type MetaStatView struct {
	CivID       string    `gorm:"column:civ_id" json:"civ_id"`
	CivName     string    `gorm:"column:civ_name" json:"civ_name"`
	Leaderboard string    `gorm:"column:leaderboard" json:"leaderboard"`
	RankLevel   string    `gorm:"column:rank_level" json:"rank_level"`
	WinRate     float64   `gorm:"column:win_rate" json:"win_rate"`
	PickRate    float64   `gorm:"column:pick_rate" json:"pick_rate"`
	GamesCount  int       `gorm:"column:games_count" json:"games_count"`
	Wins        int       `gorm:"column:wins" json:"wins"`
	Losses      int       `gorm:"column:losses" json:"losses"`
	AvgDuration float64   `gorm:"column:avg_duration" json:"avg_duration"`
	Patch       string    `gorm:"column:patch" json:"patch,omitempty"`
	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}
