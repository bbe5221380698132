// Package archive holds the recorded-traffic data model and loads
// archive documents.
//
// Loading is deliberately loose: LoadFile and Parse return the generic
// decoded tree of each entry (RawEntry), because the validator has to tell
// an absent field from one of the wrong type. Only an entry that passed
// validation is turned into the typed Entry by Decode.
//
// The accepted layout is the HTTP Archive one:
//
//	{
//	  "log": {
//	    "entries": [
//	      {
//	        "request": {"method": "GET", "url": "https://example.com"},
//	        "variables": [{"name": "id", "type": 0, "expression": "$.id"}]
//	      }
//	    ]
//	  }
//	}
package archive
