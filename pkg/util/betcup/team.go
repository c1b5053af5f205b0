package betcup

import (
	"fmt"
	"time"
)

// Compile-time check to ensure Team implements Persistable interface
var _ Persistable = (*Team)(nil)

// Team represents a club taking part in a championship
type Team struct {
	ID             string    `json:"id" column:"id" dbtype:"TEXT" primary:"true" index:"true"`
	Name           string    `json:"name" column:"name" dbtype:"TEXT NOT NULL"`
	ChampionshipID int       `json:"championshipId" column:"championshipId" dbtype:"INTEGER DEFAULT -1" index:"true"`
	TeamUrl        string    `json:"teamUrl,omitempty" column:"teamUrl" dbtype:"TEXT"`
	CreatedAt      time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// NewTeam creates a new Team with default values
func NewTeam(id, name string) *Team {
	return &Team{
		ID:             id,
		Name:           name,
		ChampionshipID: -1,
	}
}

// GetPrimaryKey returns the primary key as a map
func (t *Team) GetPrimaryKey() map[string]interface{} {
	return map[string]any{
		"id": t.ID,
	}
}

// SetPrimaryKey sets the primary key from a map
func (t *Team) SetPrimaryKey(pk map[string]interface{}) error {
	if id, ok := pk["id"]; ok {
		if idStr, ok := id.(string); ok {
			t.ID = idStr
			return nil
		}
		return fmt.Errorf("primary key 'id' must be a string")
	}
	return fmt.Errorf("primary key 'id' not found")
}

// GetTableName returns the table name for teams
func (t *Team) GetTableName() string {
	return "team"
}

// BeforeSave is called before saving the team
func (t *Team) BeforeSave() error {
	if t.ID == "" {
		return fmt.Errorf("team has no id")
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

// AfterSave is called after saving the team
func (t *Team) AfterSave() error {
	return nil
}

// BeforeDelete is called before deleting the team
func (t *Team) BeforeDelete() error {
	return nil
}

// AfterDelete is called after deleting the team
func (t *Team) AfterDelete() error {
	return nil
}
