// Package mapping provides the keyword, successor and UI metadata tables
// that drive clip classification and transition generation, plus YAML
// parsing and validation for overriding them.
//
// Tables are ordered sequences, never maps: the first keyword in
// declaration order that matches a clip wins, so order is part of the
// table's meaning.
//
// # Schema Overview
//
// Every key is optional. A key that is present replaces the built-in table
// as a whole; absent keys keep the defaults.
//
//	version: "1"
//	locomotion_indicators: [walk, idle, default]
//	locomotion:
//	  - keyword: walk01_loop
//	    name: WalkLoop
//	  - keyword: idle
//	    name: Idle
//	general:
//	  - keyword: aerobic-dance
//	    name: Dance
//	successors:
//	  - name: WalkStart
//	    next: WalkLoop
//	  - name: WalkLoop      # no next: terminal
//	general_successors:
//	  - name: StandToSit
//	    next: StandToSitRev
//	return_to: Idle
//	ui:
//	  - name: Dance
//	    icon: "💃"
//	    description: Aerobic dance
//
// # Resolution
//
//  1. A key containing any locomotion indicator is resolved against
//     "locomotion" only.
//  2. Any other key is resolved against "general".
//  3. Within a table the first matching keyword wins.
package mapping
