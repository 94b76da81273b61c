// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndc

import "encoding/json"

// ErrorResponse is the structured error envelope a connector returns
// alongside a 4xx/5xx status.
type ErrorResponse struct {
	// Message is a human-readable summary of the error.
	Message string `json:"message"`

	// Details carries any machine-readable error context.
	Details map[string]any `json:"details,omitempty"`
}

// CapabilitiesResponse describes what the connector supports.
type CapabilitiesResponse struct {
	Version      string       `json:"version"`
	Capabilities Capabilities `json:"capabilities"`
}

// Capabilities enumerates optional protocol features. A nil leaf means
// the feature is unsupported.
type Capabilities struct {
	Query         QueryCapabilities         `json:"query"`
	Mutation      MutationCapabilities      `json:"mutation"`
	Relationships *RelationshipCapabilities `json:"relationships,omitempty"`
}

// LeafCapability marks a supported feature. It carries no data; its
// presence is the signal.
type LeafCapability struct{}

// QueryCapabilities describes optional query features.
type QueryCapabilities struct {
	Aggregates *LeafCapability `json:"aggregates,omitempty"`
	Variables  *LeafCapability `json:"variables,omitempty"`
	Explain    *LeafCapability `json:"explain,omitempty"`
}

// MutationCapabilities describes optional mutation features.
type MutationCapabilities struct {
	Transactional *LeafCapability `json:"transactional,omitempty"`
	Explain       *LeafCapability `json:"explain,omitempty"`
}

// RelationshipCapabilities describes optional relationship features.
type RelationshipCapabilities struct {
	RelationComparisons *LeafCapability `json:"relation_comparisons,omitempty"`
	OrderByAggregate    *LeafCapability `json:"order_by_aggregate,omitempty"`
}

// SchemaResponse describes the connector's data model.
type SchemaResponse struct {
	ScalarTypes map[string]ScalarType `json:"scalar_types"`
	ObjectTypes map[string]ObjectType `json:"object_types"`
	Collections []CollectionInfo      `json:"collections"`
	Functions   []FunctionInfo        `json:"functions"`
	Procedures  []ProcedureInfo       `json:"procedures"`
}

// ScalarType describes one scalar type and its operators. Aggregate
// function and comparison operator definitions are connector-specific,
// so they stay raw.
type ScalarType struct {
	Representation      json.RawMessage            `json:"representation,omitempty"`
	AggregateFunctions  map[string]json.RawMessage `json:"aggregate_functions"`
	ComparisonOperators map[string]json.RawMessage `json:"comparison_operators"`
}

// ObjectType describes one object type in the schema.
type ObjectType struct {
	Description string                 `json:"description,omitempty"`
	Fields      map[string]ObjectField `json:"fields"`
}

// ObjectField describes one field of an object type.
type ObjectField struct {
	Description string          `json:"description,omitempty"`
	Type        json.RawMessage `json:"type"`
}

// ArgumentInfo describes one argument of a collection, function, or
// procedure.
type ArgumentInfo struct {
	Description string          `json:"description,omitempty"`
	Type        json.RawMessage `json:"type"`
}

// CollectionInfo describes one queryable collection.
type CollectionInfo struct {
	Name                  string                          `json:"name"`
	Description           string                          `json:"description,omitempty"`
	Arguments             map[string]ArgumentInfo         `json:"arguments"`
	Type                  string                          `json:"type"`
	UniquenessConstraints map[string]UniquenessConstraint `json:"uniqueness_constraints"`
	ForeignKeys           map[string]ForeignKeyConstraint `json:"foreign_keys"`
}

// UniquenessConstraint names the columns that uniquely identify a row.
type UniquenessConstraint struct {
	UniqueColumns []string `json:"unique_columns"`
}

// ForeignKeyConstraint maps columns onto another collection's columns.
type ForeignKeyConstraint struct {
	ColumnMapping     map[string]string `json:"column_mapping"`
	ForeignCollection string            `json:"foreign_collection"`
}

// FunctionInfo describes one callable function.
type FunctionInfo struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Arguments   map[string]ArgumentInfo `json:"arguments"`
	ResultType  json.RawMessage         `json:"result_type"`
}

// ProcedureInfo describes one callable procedure.
type ProcedureInfo struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Arguments   map[string]ArgumentInfo `json:"arguments"`
	ResultType  json.RawMessage         `json:"result_type"`
}

// QueryRequest asks the connector to run a query against a collection.
type QueryRequest struct {
	Collection              string                     `json:"collection"`
	Query                   Query                      `json:"query"`
	Arguments               map[string]json.RawMessage `json:"arguments"`
	CollectionRelationships map[string]json.RawMessage `json:"collection_relationships"`
	Variables               []map[string]any           `json:"variables,omitempty"`
}

// Query is the shape of the rows and aggregates to return. Field
// selections, ordering, and predicates are expression trees whose shape
// the engine owns, so they stay raw here.
type Query struct {
	Aggregates map[string]json.RawMessage `json:"aggregates,omitempty"`
	Fields     map[string]json.RawMessage `json:"fields,omitempty"`
	Limit      *uint32                    `json:"limit,omitempty"`
	Offset     *uint32                    `json:"offset,omitempty"`
	OrderBy    json.RawMessage            `json:"order_by,omitempty"`
	Predicate  json.RawMessage            `json:"predicate,omitempty"`
}

// QueryResponse is one row set per query variable set.
type QueryResponse []RowSet

// RowSet holds the rows and aggregates produced for one variable set.
type RowSet struct {
	Aggregates map[string]any   `json:"aggregates,omitempty"`
	Rows       []map[string]any `json:"rows,omitempty"`
}

// ExplainResponse describes how the connector would execute a query.
type ExplainResponse struct {
	Details map[string]string `json:"details"`
}

// MutationRequest asks the connector to run a batch of operations.
type MutationRequest struct {
	Operations              []MutationOperation        `json:"operations"`
	CollectionRelationships map[string]json.RawMessage `json:"collection_relationships"`
}

// MutationOperation is one procedure invocation within a mutation.
type MutationOperation struct {
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Fields    json.RawMessage `json:"fields,omitempty"`
}

// MutationResponse carries one result per requested operation.
type MutationResponse struct {
	OperationResults []MutationOperationResults `json:"operation_results"`
}

// MutationOperationResults is the outcome of one mutation operation.
type MutationOperationResults struct {
	Type   string          `json:"type"`
	Result json.RawMessage `json:"result,omitempty"`
}
