package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

const resultPageSize = 6

var greetings = map[string]struct{}{
	"開始": {}, "start": {}, "hi": {}, "hello": {}, "嗨": {}, "您好": {},
}

var cityPagePattern = regexp.MustCompile(`^(台北|新北|台中|高雄)(?:#p(\d+))?$`)

// allDistricts maps every district the menus know about to its owning city.
// Cities are scanned in menu order so duplicated district names (大安區, 東區…)
// always resolve to the same city.
var allDistricts = func() map[string]string {
	m := make(map[string]string)
	for _, city := range SupportedCities {
		for _, d := range DistrictsMap[city] {
			if _, ok := m[d]; !ok {
				m[d] = city
			}
		}
	}
	return m
}()

// districtCityFallback covers districts the catalog has no rows for yet, so a
// bare district query still resolves to some city's picks.
var districtCityFallback = map[string]string{
	"信義區": "台北", "大安區": "台北", "中正區": "台北", "松山區": "台北", "萬華區": "台北", "大同區": "台北",
	"中山區": "台北", "內湖區": "台北", "南港區": "台北", "士林區": "台北", "北投區": "台北", "文山區": "台北",
	"西屯區": "台中", "北屯區": "台中", "南屯區": "台中", "中區": "台中", "西區": "台中", "北區": "台中",
	"東區": "台中", "南區": "台中", "太平區": "台中", "大里區": "台中", "霧峰區": "台中", "烏日區": "台中",
	"鹽埕區": "高雄", "鼓山區": "高雄", "三民區": "高雄", "苓雅區": "高雄", "前金區": "高雄", "新興區": "高雄",
	"前鎮區": "高雄", "左營區": "高雄", "楠梓區": "高雄", "小港區": "高雄", "鳳山區": "高雄", "仁武區": "高雄",
}

const (
	textCatalogNotLoaded = "目前景點資料尚未載入，請稍後再試～"
	textCategoryRetry    = "讀取類別失敗，請再點一次類別 🙏"
	textPostbackRetry    = "讀取資料失敗，請再試一次 🙏"
	textGenericFailure   = "系統有點忙，請稍後再試一次 🙏"
	textNoNearbyGeo      = "附近暫時找不到帶座標的景點，請先輸入行政區名稱查詢～"
)

// DialogueService is the stateless router. Every inbound event is classified
// on its own; conversational context rides inside the message text or the
// postback payload the client echoes back.
type DialogueService struct {
	placeService     *PlaceService
	replyService     *ReplyService
	rouletteService  *RouletteService
	recommendService *RecommendService
	ai               TextGenerator
	sender           MessageSender
	defaultCity      string
}

func NewDialogueService(placeService *PlaceService, replyService *ReplyService,
	rouletteService *RouletteService, recommendService *RecommendService,
	ai TextGenerator, sender MessageSender, defaultCity string) *DialogueService {
	if defaultCity == "" {
		defaultCity = "台北"
	}
	return &DialogueService{
		placeService:     placeService,
		replyService:     replyService,
		rouletteService:  rouletteService,
		recommendService: recommendService,
		ai:               ai,
		sender:           sender,
		defaultCity:      defaultCity,
	}
}

// userIDFromSource pulls the durable user id out of any source shape.
func userIDFromSource(source webhook.SourceInterface) string {
	switch s := source.(type) {
	case webhook.UserSource:
		return s.UserId
	case *webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.UserId
	case *webhook.GroupSource:
		return s.UserId
	case webhook.RoomSource:
		return s.UserId
	case *webhook.RoomSource:
		return s.UserId
	}
	return ""
}

// HandleEvent classifies one webhook event and sends the matching reply.
// Nothing in here is allowed to crash the webhook handler; every failure path
// turns into a user-visible text.
func (s *DialogueService) HandleEvent(ctx context.Context, ev webhook.EventInterface) {
	trace := uuid.NewString()[:8]

	switch e := ev.(type) {
	case webhook.MessageEvent:
		userID := userIDFromSource(e.Source)
		switch msg := e.Message.(type) {
		case webhook.TextMessageContent:
			text := strings.TrimSpace(msg.Text)
			if text == "" {
				return
			}
			log.Printf("[%s] text event: %q", trace, text)
			s.handleText(ctx, e.ReplyToken, userID, text)
		case webhook.LocationMessageContent:
			log.Printf("[%s] location event: %.5f,%.5f", trace, msg.Latitude, msg.Longitude)
			s.handleLocation(e.ReplyToken, userID, msg.Latitude, msg.Longitude)
		}
	case webhook.PostbackEvent:
		userID := userIDFromSource(e.Source)
		log.Printf("[%s] postback event", trace)
		data := ""
		if e.Postback != nil {
			data = e.Postback.Data
		}
		s.handlePostback(e.ReplyToken, userID, data)
	}
}

func (s *DialogueService) reply(replyToken, userID string, messages ...messaging_api.MessageInterface) {
	s.sender.Deliver(replyToken, userID, messages)
}

func (s *DialogueService) replyText(replyToken, userID, text string) {
	s.reply(replyToken, userID, &messaging_api.TextMessage{Text: text})
}

// handleText walks the classification cascade; the first matching branch wins.
func (s *DialogueService) handleText(ctx context.Context, replyToken, userID, text string) {
	// 1) structured category token: CAT|city|district|category|page
	if strings.HasPrefix(text, "CAT|") {
		parts := strings.SplitN(text, "|", 5)
		if len(parts) != 5 {
			s.replyText(replyToken, userID, textCategoryRetry)
			return
		}
		page, err := strconv.Atoi(parts[4])
		if err != nil || page < 1 {
			page = 1
		}
		s.replyPlacesList(replyToken, userID, parts[1], parts[2], models.Category(parts[3]), page)
		return
	}

	// 2) greeting → city menu
	if _, ok := greetings[strings.ToLower(text)]; ok {
		s.reply(replyToken, userID, s.replyService.CitySelectionMessage())
		return
	}

	// 3) city, optionally with a #p<n> page suffix → district selector
	if m := cityPagePattern.FindStringSubmatch(text); m != nil {
		page := 1
		if m[2] != "" {
			if n, err := strconv.Atoi(m[2]); err == nil && n >= 1 {
				page = n
			}
		}
		s.reply(replyToken, userID, s.replyService.DistrictSelectionMessage(m[1], page))
		return
	}

	// 4) known or plausible district name → category imagemap
	if city, ok := allDistricts[text]; ok {
		s.reply(replyToken, userID, s.replyService.CategoryImagemap(city, text))
		return
	}
	if strings.HasSuffix(text, "區") && utf8.RuneCountInString(text) >= 2 && utf8.RuneCountInString(text) <= 4 {
		s.reply(replyToken, userID, s.replyService.CategoryImagemap(s.defaultCity, text))
		return
	}

	// 5) district observed in the catalog → quick suggestion text
	if _, ok := s.placeService.DistrictSet()[text]; ok {
		s.replyText(replyToken, userID, s.pickSuggestions(text))
		return
	}

	// 6) auxiliary feature keywords
	switch strings.ToLower(text) {
	case "美食轉盤", "轉盤", "roulette":
		result := s.rouletteService.Spin(s.defaultCity, "")
		s.replyText(replyToken, userID, fmt.Sprintf("今天就吃 %s！\n%s", result.Food, result.MapsLink))
		return
	case "今日推薦", "today":
		picks := s.recommendService.PickToday("", "", "", 1)
		if len(picks) == 0 {
			s.replyText(replyToken, userID, textCatalogNotLoaded)
			return
		}
		p := picks[0]
		s.replyText(replyToken, userID, fmt.Sprintf("🎯 今日推薦：%s%s\n%s\n%s", p.City, p.District, p.Name, p.MapsLink))
		return
	}
	for prefix, mode := range map[string]AIMode{"摘要": AIModeSummary, "翻譯": AIModeTranslate, "改寫": AIModeRewrite} {
		if rest, ok := strings.CutPrefix(text, prefix); ok && strings.TrimSpace(rest) != "" {
			s.generateAndSend(replyToken, userID, mode, strings.TrimSpace(rest))
			return
		}
	}

	// 7) anything else goes to the assistant
	s.generateAndSend(replyToken, userID, AIModeNone, text)
}

// generateAndSend runs the generative call off the webhook path. Delivery
// falls back from reply to push on its own, so a slow generation past the
// reply-token window still reaches the user.
func (s *DialogueService) generateAndSend(replyToken, userID string, mode AIMode, text string) {
	go func() {
		answer := s.ai.GenerateText(context.Background(), mode, text)
		s.replyText(replyToken, userID, answer)
	}()
}

func packPlace(p *models.Place) string {
	return p.Name + "\n" + p.MapsLink
}

// handleLocation answers a shared location with the nearest walk, cafe and
// spot (or event) entries.
func (s *DialogueService) handleLocation(replyToken, userID string, lat, lng float64) {
	if s.placeService.Size() == 0 {
		s.replyText(replyToken, userID, textCatalogNotLoaded)
		return
	}

	walk := s.placeService.NearestByType(lat, lng, "walk")
	cafe := s.placeService.NearestByType(lat, lng, "cafe")
	special := s.placeService.NearestByType(lat, lng, "spot")
	if special == nil {
		special = s.placeService.NearestByType(lat, lng, "event")
	}

	var parts []string
	if walk != nil {
		parts = append(parts, "🚶 散步（就近）：\n"+packPlace(walk))
	}
	if cafe != nil {
		parts = append(parts, "☕ 咖啡廳（就近）：\n"+packPlace(cafe))
	}
	if special != nil {
		parts = append(parts, "🎯 景點（就近）：\n"+packPlace(special))
	}
	if len(parts) == 0 {
		s.replyText(replyToken, userID, textNoNearbyGeo)
		return
	}
	s.replyText(replyToken, userID, strings.Join(parts, "\n\n"))
}

// pickSuggestions builds the short walk/cafe/spot summary for a district,
// widening to the owning city when the district itself has no rows.
func (s *DialogueService) pickSuggestions(district string) string {
	if s.placeService.Size() == 0 {
		return textCatalogNotLoaded
	}

	walk := s.placeService.FirstByTypeInDistrict("walk", district)
	cafe := s.placeService.FirstByTypeInDistrict("cafe", district)
	special := s.placeService.FirstByTypeInDistrict("spot", district)
	if special == nil {
		special = s.placeService.FirstByTypeInDistrict("event", district)
	}

	if walk == nil && cafe == nil && special == nil {
		city := s.placeService.CityOfDistrict(district)
		if city == "" {
			city = districtCityFallback[district]
		}
		if city != "" {
			walk = s.placeService.FirstByTypeInCity("walk", city)
			cafe = s.placeService.FirstByTypeInCity("cafe", city)
			special = s.placeService.FirstByTypeInCity("spot", city)
			if special == nil {
				special = s.placeService.FirstByTypeInCity("event", city)
			}
		}
	}

	var parts []string
	if walk != nil {
		parts = append(parts, "🚶 散步：\n"+packPlace(walk))
	}
	if cafe != nil {
		parts = append(parts, "☕ 咖啡廳：\n"+packPlace(cafe))
	}
	if special != nil {
		parts = append(parts, "🎯 景點：\n"+packPlace(special))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("「%s」目前沒有資料，看起來你尚未匯入該城市的清單。", district)
	}
	return strings.Join(parts, "\n\n")
}

// replyPlacesList answers a category page with place cards, or an explanatory
// text when the page is empty.
func (s *DialogueService) replyPlacesList(replyToken, userID, city, district string, category models.Category, page int) {
	result := s.placeService.FilterPlaces(city, district, category, page, resultPageSize)
	if len(result.Items) == 0 {
		s.replyText(replyToken, userID,
			fmt.Sprintf("%s%s 目前沒有「%s」資料，換個類別看看？", city, district, models.CategoryLabel(category)))
		return
	}

	flex, err := s.replyService.PlacesFlexMessage(city, district, category, page, result.Items)
	if err != nil {
		log.Printf("build place cards failed: %v", err)
		s.replyText(replyToken, userID, textGenericFailure)
		return
	}

	messages := []messaging_api.MessageInterface{flex}
	if result.HasNext {
		messages = append(messages, s.replyService.NextPageMessage(city, district, category, page+1))
	}
	s.reply(replyToken, userID, messages...)
}

// handlePostback decodes the JSON payload and re-dispatches onto the same
// branches the text tokens use.
func (s *DialogueService) handlePostback(replyToken, userID, data string) {
	data = strings.TrimSpace(data)
	var payload models.PostbackData
	if data == "" || json.Unmarshal([]byte(data), &payload) != nil {
		s.replyText(replyToken, userID, textPostbackRetry)
		return
	}

	switch payload.Action {
	case "select_district":
		s.reply(replyToken, userID, s.replyService.CategoryImagemap(payload.City, payload.District))
	case "select_category", "list_next":
		page := payload.Page
		if page < 1 {
			page = 1
		}
		s.replyPlacesList(replyToken, userID, payload.City, payload.District, models.Category(payload.Category), page)
	default:
		s.replyText(replyToken, userID, textPostbackRetry)
	}
}
