package tournament

import (
	"strconv"
	"strings"

	"tourneycontrol/internal/models"
	"tourneycontrol/pkg/csvio"
)

// ROISentinel is the individual ROI assigned when a row has zero recorded
// cost: total loss of nothing committed, kept distinct from a genuine 0%.
const ROISentinel = -100

// BuildEntry turns one parsed CSV row into a raw entry, or reports ok=false
// for rows that must be skipped: missing game id, tournament name or player,
// and the "total" summary/footer rows injected by the exporting tool.
// Skipped rows are not errors; they are simply absent from the batch.
func BuildEntry(cols []string, schema csvio.ColumnSchema, userID string, datasetID uint) (*models.TournamentRaw, bool) {
	network := csvio.Field(cols, schema.Network)
	if network == "" {
		network = "Unknown"
	}
	player := csvio.Field(cols, schema.Player)
	gameID := csvio.Field(cols, schema.GameID)
	name := csvio.Field(cols, schema.Name)

	if gameID == "" || name == "" || player == "" {
		return nil, false
	}
	if strings.Contains(strings.ToLower(gameID), "total") ||
		strings.Contains(strings.ToLower(name), "total") {
		return nil, false
	}

	currency := strings.ToUpper(csvio.Field(cols, schema.Currency))
	if currency == "" {
		currency = "USD"
	}
	rate := ConversionRate(currency)

	stake := csvio.ParseMoney(csvio.Field(cols, schema.Stake))
	rake := csvio.ParseMoney(csvio.Field(cols, schema.Rake))
	result := csvio.ParseMoney(csvio.Field(cols, schema.Result))
	prize := csvio.ParseMoney(csvio.Field(cols, schema.Prize))
	bounty := csvio.ParseMoney(csvio.Field(cols, schema.BountyPrize))

	if IsZodiacAdjusted(name) {
		stake *= ZodiacDeflator
		rake *= ZodiacDeflator
		result *= ZodiacDeflator
		prize *= ZodiacDeflator
		bounty *= ZodiacDeflator
		rate = 1.0
		currency = ZodiacCurrencyLabel
	}

	cost := stake + rake
	netProfit := result - rake

	roi := float64(ROISentinel)
	if cost > 0 {
		roi = (netProfit / cost) * 100
	}

	// ITM is inferred from profit because the export carries no placement
	// column. A heuristic, not ground truth: a min-cash below the rake
	// still counts as a loss here.
	profitUSD := netProfit * rate
	isITM := profitUSD > 0

	speed := csvio.Field(cols, schema.Speed)
	if speed == "" {
		speed = "Normal"
	}

	reentries, _ := strconv.Atoi(csvio.Field(cols, schema.Reentries))

	return &models.TournamentRaw{
		UserID:        userID,
		DatasetID:     datasetID,
		TournamentKey: MakeKey(network, name),
		Network:       network,
		Player:        player,
		GameID:        gameID,
		Name:          name,
		Stake:         stake,
		Rake:          rake,
		PlayedAt:      csvio.Field(cols, schema.Date),
		Participants:  csvio.ParseCount(csvio.Field(cols, schema.Participants)),
		Speed:         speed,
		ResultBase:    result,
		Currency:      currency,
		Prize:         prize,
		BountyPrize:   bounty,
		Reentries:     reentries,
		ProfitUSD:     profitUSD,
		StakeUSD:      stake * rate,
		RakeUSD:       rake * rate,
		ROIIndividual: roi,
		IsITM:         isITM,
		Flags:         csvio.Field(cols, schema.Flags),
	}, true
}

// BuildBatch parses a whole CSV file body (header on the first line) into
// raw entries. Returns the built entries plus the number of data rows
// skipped by validity checks.
func BuildBatch(text string, userID string, datasetID uint) ([]models.TournamentRaw, int) {
	lines := csvio.SplitLines(text)
	if len(lines) < 2 {
		return nil, 0
	}

	delimiter := csvio.DetectDelimiter(lines[0])

	var entries []models.TournamentRaw
	skipped := 0
	for _, line := range lines[1:] {
		cols := csvio.SplitRow(line, delimiter)
		entry, ok := BuildEntry(cols, csvio.DefaultSchema, userID, datasetID)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, *entry)
	}
	return entries, skipped
}
