// Package graph provides the JSON wire format of a habit prerequisite graph.
//
// The node-link format is what `habitstack graph --format json` prints and
// is meant for other tools to consume:
//
//	{
//	  "nodes": [
//	    {"id": "run", "title": "Run", "status": "open", "streak": 3},
//	    {"id": "stretch", "title": "Stretch", "status": "done", "streak": 4}
//	  ],
//	  "edges": [{"from": "run", "to": "stretch"}]
//	}
//
// An edge points from a habit to one of its prerequisites. Nodes for
// prerequisite ids that match no habit have "missing": true, and edges
// closing a prerequisite cycle have "cycle": true.
//
// Use [FromDAG] and [ToDAG] to convert to and from the in-memory graph,
// [MarshalGraph] and [WriteGraph] to encode.
package graph
