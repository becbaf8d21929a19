package models

import (
	"time"

	"github.com/google/uuid"
)

type DataSourceType string

const (
	DataSourceDatabase DataSourceType = "Database"
	DataSourceAPI      DataSourceType = "API"
	DataSourceFile     DataSourceType = "File"
	DataSourceCloud    DataSourceType = "Cloud"
)

// Valid reports whether t is a known data source type.
func (t DataSourceType) Valid() bool {
	switch t {
	case DataSourceDatabase, DataSourceAPI, DataSourceFile, DataSourceCloud:
		return true
	}
	return false
}

type ConnectionStatus string

const (
	Connected       ConnectionStatus = "connected"
	Disconnected    ConnectionStatus = "disconnected"
	ConnectionError ConnectionStatus = "error"
)

// Valid reports whether s is a known connection status.
func (s ConnectionStatus) Valid() bool {
	switch s {
	case Connected, Disconnected, ConnectionError:
		return true
	}
	return false
}

// DataSourcesResponse holds a list of data sources.
type DataSourcesResponse struct {
	DataSources []DataSource `json:"dataSources"`
}

// DataSource is a client's connection to an external system.
type DataSource struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Client    string           `json:"client"`
	Type      DataSourceType   `json:"type"`
	Status    ConnectionStatus `json:"status"`
	Consumers int              `json:"consumers"`
	LastSync  *time.Time       `json:"lastSync,omitempty"`
	Provider  *string          `json:"provider,omitempty"`
}

// DataSourceUpdate carries the partial fields written back to a data source.
type DataSourceUpdate struct {
	Type     *DataSourceType   `json:"type,omitempty"`
	Provider *string           `json:"provider,omitempty"`
	Status   *ConnectionStatus `json:"status,omitempty"`
	LastSync *time.Time        `json:"lastSync,omitempty"`
}

// Apply merges the update into the data source.
func (u DataSourceUpdate) Apply(ds *DataSource) {
	if u.Type != nil {
		ds.Type = *u.Type
	}
	if u.Provider != nil {
		provider := *u.Provider
		ds.Provider = &provider
	}
	if u.Status != nil {
		ds.Status = *u.Status
	}
	if u.LastSync != nil {
		t := *u.LastSync
		ds.LastSync = &t
	}
}
