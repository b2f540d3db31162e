package lineup

// Role sentinels returned when a positional role cannot be resolved.
const (
	RoleSubUnknown       = "Sub/Unknown"
	RoleUnknownFormation = "UnknownFormation"
	RoleUnknownPosNum    = "UnknownPosNum"
	RoleGK               = "GK"
)

// formationRoles maps Opta formation ids to positional number -> role name,
// following the F24 formation diagrams.
var formationRoles = map[int]map[int]string{
	// 2: 442
	2: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		7: "RM", 4: "RCM", 8: "LCM", 11: "LM",
		10: "RCF", 9: "LCF"},
	// 3: 41212 diamond
	3: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		4: "DM", 7: "RCM", 11: "LCM", 8: "ACM",
		10: "RCF", 9: "LCF"},
	// 4: 433
	4: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		7: "RCM", 4: "CM", 8: "LCM",
		10: "RW", 9: "ST", 11: "LW"},
	// 5: 451 / 4141
	5: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		4: "DM", 7: "RM", 8: "RCM", 10: "LCM", 11: "LM",
		9: "ST"},
	// 6: 4411
	6: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		7: "RM", 4: "RCM", 8: "LCM", 11: "LM",
		10: "CAM/SS", 9: "ST"},
	// 7: 4141
	7: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		4: "DM", 7: "RM", 8: "RCM", 10: "LCM", 11: "LM",
		9: "ST"},
	// 8: 4231
	8: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		8: "RDM", 4: "LDM",
		7: "RAM", 10: "CAM", 11: "LAM",
		9: "ST"},
	// 9: 4321
	9: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		8: "RCM", 4: "CM", 7: "LCM",
		10: "RAM/SS", 11: "LAM/SS",
		9: "ST"},
	// 10: 532 / 352
	10: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB", 7: "RCM", 8: "LCM", 3: "LWB",
		11: "SUB/?",
		10: "RCF", 9: "LCF"},
	// 11: 541
	11: {1: "GK", 2: "RWB", 6: "RCB", 5: "CB", 4: "LCB", 3: "LWB",
		7: "RM", 8: "RCM", 10: "LCM", 11: "LM",
		9: "ST"},
	// 12: 352
	12: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB", 7: "RCM", 8: "LCM", 3: "LWB",
		11: "CAM/SS",
		10: "RCF", 9: "LCF"},
	// 13: 343
	13: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB/RM", 7: "RCM", 8: "LCM", 3: "LWB/LM",
		10: "RW", 9: "ST", 11: "LW"},
	// 14: 31312
	14: {1: "GK", 6: "RCB", 5: "CB", 7: "LCB", 4: "DM",
		2: "RM", 8: "CM", 3: "LM",
		10: "CAM",
		9: "RCF", 11: "LCF"},
	// 15: 4222
	15: {1: "GK", 2: "RB", 5: "RCB", 6: "LCB", 3: "LB",
		4: "RDM", 7: "LDM",
		8: "RAM", 11: "LAM",
		10: "RCF", 9: "LCF"},
	// 16: 3511
	16: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB", 7: "RCM", 8: "LCM", 3: "LWB",
		11: "CAM", 10: "SS/F9",
		9: "ST"},
	// 17: 3421
	17: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB/RM", 7: "RCM", 8: "LCM", 3: "LWB/LM",
		10: "RAM/IF", 9: "LAM/IF",
		11: "ST"},
	// 18: 3412
	18: {1: "GK", 6: "RCB", 5: "CB", 4: "LCB",
		2: "RWB/RM", 7: "RCM", 8: "LCM", 3: "LWB/LM",
		9: "CAM",
		10: "RCF", 11: "LCF"},
}

// RoleFor maps a formation id and positional number to a role name.
// Positional number 0 marks a substitute or off-pitch player.
func RoleFor(formationID, positionNum int) string {
	if positionNum == 0 {
		return RoleSubUnknown
	}
	roles, ok := formationRoles[formationID]
	if !ok {
		return RoleUnknownFormation
	}
	role, ok := roles[positionNum]
	if !ok {
		return RoleUnknownPosNum
	}
	return role
}
