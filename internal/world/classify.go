package world

import (
	"fmt"

	"github.com/samdwyer/towerband/internal/tiled"
)

// Tile role markers and directional flags read from tileset custom
// properties, matching the map editor conventions.
const (
	propRoad       = "road"
	propBuildPoint = "construction-point"
	propStart      = "start-point"
	propEnd        = "end-point"

	propUp    = "up"
	propRight = "right"
	propDown  = "down"
	propLeft  = "left"
)

// roleProps pairs each role marker with its directional-flag reader order.
var roleProps = []string{propRoad, propBuildPoint, propStart, propEnd}

var dirProps = [4]string{propUp, propRight, propDown, propLeft}

// Classification buckets every tileset tile id by its role. It is computed
// once per tileset and consumed by the grid builder.
type Classification struct {
	// Roads maps road tile ids to the directions they permit.
	Roads map[uint32]DirectionMask
	// BuildPoints holds tile ids where towers may be constructed.
	BuildPoints map[uint32]bool
	// StartID and EndID are the unique start/end tile ids.
	StartID uint32
	EndID   uint32
}

// IsRoad reports whether the tile id was classified as a road.
func (c *Classification) IsRoad(id uint32) bool {
	_, ok := c.Roads[id]
	return ok
}

// IsBuildPoint reports whether the tile id marks a construction point.
func (c *Classification) IsBuildPoint(id uint32) bool {
	return c.BuildPoints[id]
}

// ClassifyTileset scans a tileset's custom properties and buckets each tile
// into road, construction point, start, or end. A tile carrying more than
// one role marker is rejected rather than resolved by property order, and
// the start and end roles must each appear on exactly one tile.
func ClassifyTileset(ts tiled.Tileset) (*Classification, error) {
	c := &Classification{
		Roads:       make(map[uint32]DirectionMask),
		BuildPoints: make(map[uint32]bool),
	}
	haveStart, haveEnd := false, false

	for _, tile := range ts.Tiles {
		roles := tileRoles(tile)
		if len(roles) > 1 {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("tile %d carries conflicting role markers %v", tile.ID, roles),
			}
		}
		if len(roles) == 0 {
			continue
		}

		switch roles[0] {
		case propRoad:
			var mask DirectionMask
			for i, name := range dirProps {
				if tile.BoolProperty(name) {
					mask |= Directions[i].Bit()
				}
			}
			c.Roads[tile.ID] = mask
		case propBuildPoint:
			c.BuildPoints[tile.ID] = true
		case propStart:
			if haveStart {
				return nil, &ConfigError{
					Reason: fmt.Sprintf("start point defined on tiles %d and %d, want exactly one", c.StartID, tile.ID),
				}
			}
			c.StartID = tile.ID
			haveStart = true
		case propEnd:
			if haveEnd {
				return nil, &ConfigError{
					Reason: fmt.Sprintf("end point defined on tiles %d and %d, want exactly one", c.EndID, tile.ID),
				}
			}
			c.EndID = tile.ID
			haveEnd = true
		}
	}

	if !haveStart {
		return nil, &ConfigError{Reason: "no tile defined as starting point"}
	}
	if !haveEnd {
		return nil, &ConfigError{Reason: "no tile defined as end point"}
	}
	return c, nil
}

// tileRoles returns every role marker present on the tile.
func tileRoles(tile tiled.Tile) []string {
	var roles []string
	for _, name := range roleProps {
		if tile.HasProperty(name) {
			roles = append(roles, name)
		}
	}
	return roles
}
