package narrative

// Opener phrasing pools, one per archetype. Each phrasing carries the
// {name} placeholder; the fixture pool also uses {home}, the form pool
// {ppg} and {form}. Variant selection is player-id modulo pool size, so a
// given player keeps the same phrasing across regenerations.

var fixtureHook = []string{
	"{name} is a fixture‑driven buy: the next 3 lean friendly and you get {home} home dates to capitalize.",
	"The short‑term schedule screams upside for {name} — the home/away split is kind and the ceiling is real.",
	"{name} has a runway right now: two good matchups and home advantage make this a short‑term strike.",
}

var formHook = []string{
	"{name} is in real form — {ppg} PPG over recent weeks is not noise, it’s output you can bank.",
	"{name} is coming in hot: form {form} with steady minutes makes him the obvious “play the streak” pick.",
	"{name} is the one riding momentum right now — the recent returns justify the buy even before fixtures.",
}

var differentialHook = []string{
	"{name} is a classic differential with secure minutes — the upside is rank‑moving if he pops.",
	"{name} gives you a low‑owned edge without the rotation headache — that’s the appeal.",
	"{name} is the off‑template pick who still plays — that combo is rare and valuable.",
}

var projectionHook = []string{
	"{name} is projected well for the next GW — this is a short‑term expected‑points play.",
	"{name} rates strongly in the model for the immediate window, which makes him a clean buy now.",
	"{name} has a strong near‑term projection — you’re buying the next 2–3 GWs, not just the season.",
}

var budgetHook = []string{
	"{name} is the budget enabler who still returns — price makes him an easy squad unlock.",
	"{name} offers genuine output for the price, which is exactly what a budget slot should do.",
	"{name} is value‑first: cheap, playable, and with enough upside to matter.",
}

var premiumHook = []string{
	"{name} is a premium you buy for captaincy‑adjacent output — the price is steep but the ceiling is higher.",
	"{name} is the premium with the most reliable floor — you pay up for security plus haul potential.",
	"{name} is the big‑ticket pick here; you’re buying star‑level upside, not just fixtures.",
}

var braveHook = []string{
	"{name} is a brave buy against the fixture grain — you’re betting on talent over schedule.",
	"{name} is a conviction pick despite a tough run — the bet is on role and quality.",
	"{name} is the high‑risk/high‑reward play even with harder opponents on deck.",
}
