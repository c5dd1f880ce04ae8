package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Aaron629/today-go-where-bot/config/environment"
	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/Aaron629/today-go-where-bot/utils"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// DistrictsMap is the administrative ordering of districts per supported city.
// The order is what users see in the selector, so it stays stable.
var DistrictsMap = map[string][]string{
	"台北": {"中正區", "大同區", "中山區", "松山區", "大安區", "萬華區", "信義區", "士林區", "北投區", "內湖區", "南港區", "文山區"},
	"新北": {"板橋區", "三重區", "中和區", "永和區", "新莊區", "新店區", "樹林區", "鶯歌區", "三峽區", "淡水區", "汐止區", "瑞芳區", "土城區", "蘆洲區", "五股區", "泰山區", "林口區", "八里區", "深坑區", "石碇區", "坪林區", "三芝區", "石門區"},
	"台中": {"中區", "東區", "南區", "西區", "北區", "西屯區", "南屯區", "北屯區", "豐原區", "東勢區", "大甲區", "清水區", "沙鹿區", "梧棲區", "后里區", "神岡區", "潭子區", "大雅區", "新社區", "石岡區", "外埔區", "大安區", "烏日區", "大里區", "霧峰區", "太平區", "大肚區", "龍井區", "和平區"},
	"高雄": {"新興區", "前金區", "苓雅區", "鹽埕區", "鼓山區", "旗津區", "前鎮區", "三民區", "楠梓區", "小港區", "左營區", "仁武區", "大社區", "岡山區", "路竹區", "阿蓮區", "田寮區", "燕巢區", "橋頭區", "梓官區", "彌陀區", "永安區", "湖內區", "鳳山區", "大寮區", "林園區", "鳥松區", "大樹區", "旗山區", "美濃區", "六龜區", "甲仙區", "杉林區", "內門區", "茂林區", "桃源區", "那瑪夏區"},
}

// SupportedCities in menu order.
var SupportedCities = []string{"台北", "新北", "台中", "高雄"}

// Imagemap cell geometry: six 520x346 cells on a 1040x1040 base.
var imagemapCells = []struct {
	x, y     int32
	category models.Category
}{
	{0, 0, models.CategoryLandmark},
	{520, 0, models.CategoryMuseum},
	{0, 346, models.CategoryParkWalk},
	{520, 346, models.CategoryFoodMarket},
	{0, 692, models.CategoryTempleHistory},
	{520, 692, models.CategoryFamilyFun},
}

// ReplyService builds outbound LINE messages. It holds no state beyond the
// asset base URL for imagemap tiles.
type ReplyService struct {
	assetBaseURL string
}

func NewReplyService() *ReplyService {
	return &ReplyService{assetBaseURL: strings.TrimRight(environment.GetAssetBaseURL(), "/")}
}

// CitySelectionMessage is the top-level menu: one quick-reply button per city.
func (s *ReplyService) CitySelectionMessage() messaging_api.MessageInterface {
	items := []messaging_api.QuickReplyItem{
		{Action: &messaging_api.MessageAction{Label: "🏙️ 台北", Text: "台北"}},
		{Action: &messaging_api.MessageAction{Label: "🏙️ 新北", Text: "新北"}},
		{Action: &messaging_api.MessageAction{Label: "🌆 台中", Text: "台中"}},
		{Action: &messaging_api.MessageAction{Label: "🌇 高雄", Text: "高雄"}},
	}
	return &messaging_api.TextMessage{
		Text:       "請選擇你想探索的城市 🗺️",
		QuickReply: &messaging_api.QuickReply{Items: items},
	}
}

// DistrictSelectionMessage pages a city's district list through the selector
// layout. Navigation buttons echo "<city>#p<n>" so the next tap carries the
// page context back in.
func (s *ReplyService) DistrictSelectionMessage(city string, page int) messaging_api.MessageInterface {
	city = strings.TrimSpace(city)
	districts, ok := DistrictsMap[city]
	if !ok {
		return &messaging_api.TextMessage{
			Text: fmt.Sprintf("目前不支援「%s」。請選：%s", city, strings.Join(SupportedCities, " / ")),
		}
	}

	layout := utils.LayoutSelectorPage(districts, page)

	items := make([]messaging_api.QuickReplyItem, 0, utils.SelectorMaxItems)
	for _, d := range layout.Visible {
		items = append(items, messaging_api.QuickReplyItem{
			Action: &messaging_api.MessageAction{Label: d, Text: d},
		})
	}
	if layout.HasPrev {
		items = append(items, messaging_api.QuickReplyItem{
			Action: &messaging_api.MessageAction{Label: "◀ 上一頁", Text: fmt.Sprintf("%s#p%d", city, page-1)},
		})
	}
	if layout.HasNext {
		items = append(items, messaging_api.QuickReplyItem{
			Action: &messaging_api.MessageAction{Label: "下一頁 ▶", Text: fmt.Sprintf("%s#p%d", city, page+1)},
		})
	}
	if len(items) > utils.SelectorMaxItems {
		items = items[:utils.SelectorMaxItems]
	}

	title := fmt.Sprintf("請選擇「%s」行政區", city)
	if layout.HasPrev || layout.HasNext {
		title = fmt.Sprintf("請選擇「%s」行政區（第 %d 頁）", city, page)
	}
	return &messaging_api.TextMessage{
		Text:       title,
		QuickReply: &messaging_api.QuickReply{Items: items},
	}
}

// CategoryImagemap is the six-cell category picker. Each cell sends a
// "CAT|city|district|category|1" message back on tap.
func (s *ReplyService) CategoryImagemap(city, district string) messaging_api.MessageInterface {
	actions := make([]messaging_api.ImagemapActionInterface, 0, len(imagemapCells))
	for _, cell := range imagemapCells {
		actions = append(actions, &messaging_api.MessageImagemapAction{
			Text: fmt.Sprintf("CAT|%s|%s|%s|1", city, district, cell.category),
			Area: &messaging_api.ImagemapArea{X: cell.x, Y: cell.y, Width: 520, Height: 346},
		})
	}
	return &messaging_api.ImagemapMessage{
		BaseUrl:  s.assetBaseURL,
		AltText:  fmt.Sprintf("%s%s｜請選擇類別", city, district),
		BaseSize: &messaging_api.ImagemapBaseSize{Width: 1040, Height: 1040},
		Actions:  actions,
	}
}

// heroImageURL returns a LINE-displayable image URL for the place: the record's
// own image forced to https, else a keyword fallback image.
func heroImageURL(p models.Place) string {
	u := strings.TrimSpace(p.ImageURL)
	if strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}
	if u == "" {
		q := strings.TrimSpace(p.City + " " + p.Name)
		u = "https://source.unsplash.com/featured/?" + url.PathEscape(q)
	}
	return u
}

// BubbleFromPlace renders one place card as a flex bubble.
func BubbleFromPlace(p models.Place) map[string]interface{} {
	mapsLink := p.MapsLink
	if mapsLink == "" {
		mapsLink = "https://maps.google.com"
	}
	return map[string]interface{}{
		"type": "bubble",
		"hero": map[string]interface{}{
			"type":        "image",
			"url":         heroImageURL(p),
			"size":        "full",
			"aspectRatio": "20:13",
			"aspectMode":  "cover",
			"action":      map[string]interface{}{"type": "uri", "label": "地圖", "uri": mapsLink},
		},
		"body": map[string]interface{}{
			"type": "box", "layout": "vertical",
			"contents": []interface{}{
				map[string]interface{}{"type": "text", "text": p.Name, "weight": "bold", "size": "lg", "wrap": true},
				map[string]interface{}{"type": "text", "text": p.Description, "size": "sm", "wrap": true, "color": "#666666"},
				map[string]interface{}{"type": "box", "layout": "baseline", "margin": "md", "contents": []interface{}{
					map[string]interface{}{"type": "text", "text": "類別", "size": "sm", "color": "#999999"},
					map[string]interface{}{"type": "text", "text": models.CategoryLabel(utils.ToCategory(p)), "size": "sm", "margin": "sm"},
				}},
			},
		},
		"footer": map[string]interface{}{
			"type": "box", "layout": "vertical", "spacing": "sm",
			"contents": []interface{}{
				map[string]interface{}{"type": "button", "style": "primary", "height": "sm",
					"action": map[string]interface{}{"type": "uri", "label": "在地圖開啟", "uri": mapsLink}},
			},
		},
	}
}

// PlacesFlexMessage renders a result page as a single bubble or a carousel.
func (s *ReplyService) PlacesFlexMessage(city, district string, category models.Category, page int, items []models.Place) (messaging_api.MessageInterface, error) {
	bubbles := make([]interface{}, 0, len(items))
	for _, p := range items {
		bubbles = append(bubbles, BubbleFromPlace(p))
	}

	var contents interface{}
	if len(bubbles) == 1 {
		contents = bubbles[0]
	} else {
		contents = map[string]interface{}{"type": "carousel", "contents": bubbles}
	}

	raw, err := json.Marshal(contents)
	if err != nil {
		return nil, err
	}
	container, err := messaging_api.UnmarshalFlexContainer(raw)
	if err != nil {
		return nil, err
	}

	return &messaging_api.FlexMessage{
		AltText:  fmt.Sprintf("%s%s｜%s（第 %d 頁）", city, district, models.CategoryLabel(category), page),
		Contents: container,
	}, nil
}

// NextPageMessage invites the user to the next result page; the button echoes
// the structured CAT token with the page advanced.
func (s *ReplyService) NextPageMessage(city, district string, category models.Category, nextPage int) messaging_api.MessageInterface {
	return &messaging_api.TextMessage{
		Text: "還要看更多嗎？",
		QuickReply: &messaging_api.QuickReply{Items: []messaging_api.QuickReplyItem{
			{Action: &messaging_api.MessageAction{
				Label: "下一頁 ▶",
				Text:  fmt.Sprintf("CAT|%s|%s|%s|%d", city, district, category, nextPage),
			}},
		}},
	}
}
